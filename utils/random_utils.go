package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// RandomHex 生成 n 个安全随机字节的大写十六进制串
func RandomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("generate random bytes failed")
	}

	return strings.ToUpper(hex.EncodeToString(buf))
}
