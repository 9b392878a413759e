package generr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cottand/reify/generr"
)

func TestFormatWithCode(t *testing.T) {
	err := generr.New(generr.NewBoundViolation{
		Param:    "T",
		Argument: "string",
		Bound:    "Boxable",
	})
	formatted := generr.FormatWithCode(err)
	assert.Contains(t, formatted, "E005")
	assert.Contains(t, formatted, "'T'")
	assert.Contains(t, formatted, "string")
	assert.Contains(t, formatted, "Boxable")
}

func TestCodeOf(t *testing.T) {
	err := generr.New(generr.NewArityMismatch{TypeName: "Entry", Want: 2, Got: 1})
	assert.Equal(t, generr.ArityMismatch, generr.CodeOf(err))
	assert.Equal(t, generr.None, generr.CodeOf(nil))
	assert.Equal(t, generr.None, generr.CodeOf(assert.AnError))
}
