package exercises

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUser(t *testing.T) {
	ctx := context.Background()

	o := FindUser(5).Await(ctx)
	assert.True(t, o.IsSuccess())
	u, ok := o.Value().GetRight()
	assert.True(t, ok)
	assert.Equal(t, User{ID: 5, Name: "userface"}, u)

	o = FindUser(-1).Await(ctx)
	assert.True(t, o.IsSuccess(), "the miss is a value, not a task rejection")
	err, ok := o.Value().GetLeft()
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindUserName_CollapsesToOneLevel(t *testing.T) {
	ctx := context.Background()

	o := FindUserName(5).Await(ctx)
	assert.True(t, o.IsSuccess())
	assert.Equal(t, "userface", o.Value())

	o = FindUserName(-1).Await(ctx)
	assert.False(t, o.IsSuccess())
	assert.ErrorIs(t, o.Err(), ErrNotFound)
}

func TestSortText(t *testing.T) {
	assert.Equal(t, "abcd", SortText("dcba"))
	assert.Equal(t, "", SortText(""))
	assert.Equal(t, "aabb", SortText("baba"))
}
