package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEncode(t *testing.T) {
	testCases := []struct {
		Value Valuer
		Type  NodeType
		Out   string
	}{
		{NewNumberValue(1), NodeTypeNumber, "1"},
		{NewNumberValue(-2.5), NodeTypeNumber, "-2.5"},
		{NewNumberValue(1e21), NodeTypeNumber, "1e+21"},
		{NewBoolValue(true), NodeTypeBool, "true"},
		{NewBoolValue(false), NodeTypeBool, "false"},
		{NewAtomValue("**"), NodeTypeAtom, "**"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Type, tc.Value.Type())
		assert.Equal(t, tc.Out, tc.Value.Encode())
	}
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "number", NodeTypeNumber.String())
	assert.Equal(t, "bool", NodeTypeBool.String())
	assert.Equal(t, "atom", NodeTypeAtom.String())
	assert.Equal(t, "list", NodeTypeList.String())
	assert.Equal(t, "", NodeType(0).String())
}
