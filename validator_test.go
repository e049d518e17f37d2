package inquiry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		validator StringValidator
		input     string
		wantErr   bool
	}{
		{name: "required rejects empty", validator: Required("required"), input: "", wantErr: true},
		{name: "required accepts spaces", validator: Required("required"), input: " ", wantErr: false},
		{name: "min length rejects short", validator: MinLength(3, "short"), input: "ab", wantErr: true},
		{name: "min length accepts exact", validator: MinLength(3, "short"), input: "abc", wantErr: false},
		{name: "min length counts clusters", validator: MinLength(2, "short"), input: "\U0001F1EF\U0001F1F5", wantErr: true},
		{name: "max length accepts exact", validator: MaxLength(3, "long"), input: "abc", wantErr: false},
		{name: "max length rejects long", validator: MaxLength(3, "long"), input: "abcd", wantErr: true},
		{name: "max length counts clusters", validator: MaxLength(2, "long"), input: "\U0001F44D\U0001F3FDé", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.validator(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSelectionValidators(t *testing.T) {
	t.Parallel()

	one := []ListOption{{Index: 0, Value: "a"}}
	two := []ListOption{{Index: 0, Value: "a"}, {Index: 1, Value: "b"}}

	assert.EqualError(t, MinSelections(1, "pick one")(nil), "pick one")
	assert.NoError(t, MinSelections(1, "pick one")(one))
	assert.NoError(t, MaxSelections(1, "too many")(one))
	assert.EqualError(t, MaxSelections(1, "too many")(two), "too many")
}

func TestValidateReturnsFirstFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := func(string) error {
		calls++
		return nil
	}
	err := validateString([]StringValidator{counting, Required("first"), MinLength(5, "second"), counting}, "")
	assert.EqualError(t, err, "first")
	assert.Equal(t, 1, calls, "validators after a failure must not run")

	assert.NoError(t, validateString(nil, "anything"))

	err = validateOptions([]MultiOptionValidator{
		func([]ListOption) error { return errors.New("nope") },
		MinSelections(1, "unreachable"),
	}, nil)
	assert.EqualError(t, err, "nope")
}

func TestDefaultFormatters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "as typed", DefaultStringFormatter("as typed"))
	assert.Equal(t, "********", DefaultPasswordFormatter("secret"))
	assert.Equal(t, "********", DefaultPasswordFormatter(""))
	assert.Equal(t, "Yes", DefaultBoolFormatter(true))
	assert.Equal(t, "No", DefaultBoolFormatter(false))
	assert.Equal(t, "green", DefaultOptionFormatter(ListOption{Index: 1, Value: "green"}))
	assert.Equal(t, "a, c", DefaultMultiOptionFormatter([]ListOption{{Index: 0, Value: "a"}, {Index: 2, Value: "c"}}))
	assert.Empty(t, DefaultMultiOptionFormatter(nil))
}
