package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/kleisli_go/shared/helper"
	"github.com/stretchr/testify/assert"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 3, nil })
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = helper.GetTypedValueOf[int](func() (any, error) { return "3", nil })
	assert.ErrorContains(t, err, "unexpected type: string")

	boom := errors.New("boom")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	e, err := helper.GetTypedValueOf[error](func() (any, error) { return nil, nil })
	assert.NoError(t, err)
	assert.Nil(t, e)
}

func TestMustGetTypedValue_Panics(t *testing.T) {
	assert.Panics(t, func() {
		helper.MustGetTypedValue[int](func() (any, error) { return 1.5, nil })
	})
	assert.Equal(t, "ok", helper.MustGetTypedValue[string](func() (any, error) { return "ok", nil }))
}
