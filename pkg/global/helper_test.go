package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:3000", "https://shop.example.com"},
		SplitCSV(" http://localhost:3000, ,https://shop.example.com "))
	assert.Nil(t, SplitCSV(""))
}

func TestErrorResponse(t *testing.T) {
	resp := ErrorResponse("Invalid request", "Please provide a valid question", []ValidationError{
		{Field: "question", Message: "question is required", Code: "required"},
	})

	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid request", resp.Error)
	assert.Equal(t, "Please provide a valid question", resp.Message)
	assert.Len(t, resp.Errors, 1)
}
