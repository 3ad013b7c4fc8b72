package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const randomStringCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomString возвращает строку длины n из заглавных латинских букв и цифр.
// Используется для реферальных кодов, поэтому источник - crypto/rand. Индекс
// берется через rand.Int, остаток от деления байта перекосил бы распределение.
func randomString(n int) (string, error) {
	buf := make([]byte, n)
	charsetLen := big.NewInt(int64(len(randomStringCharset)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", fmt.Errorf("generating random string: %s", err.Error())
		}
		buf[i] = randomStringCharset[idx.Int64()]
	}
	return string(buf), nil
}
