package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("alice_01"))
	assert.False(t, IsValidUsername("ab"))                      // 太短
	assert.False(t, IsValidUsername("has space"))               // 非法字符
	assert.False(t, IsValidUsername("a_very_long_username_xx")) // 太长
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("abcd1234"))
	assert.False(t, IsValidPassword("short1"))    // 太短
	assert.False(t, IsValidPassword("abcdefgh"))  // 没有数字
	assert.False(t, IsValidPassword("12345678"))  // 没有字母
}
