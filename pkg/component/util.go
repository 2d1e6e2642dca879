/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package component

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math/rand"
	"time"
	"unicode"
	"unicode/utf8"
)

func ref[T any](x T) *T {
	return &x
}

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}

func sha256hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func calculateDigest(values ...any) string {
	// note: this must() is ok because the input values are expected to be JSON values
	return sha256hex(must(json.Marshal(values)))
}

// capitalize upper-cases the first rune of s; messages may start with a
// non-ASCII rune, so byte slicing would corrupt them.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// addJitter increases the given duration by a random percentage between
// minPercent and maxPercent (both inclusive).
func addJitter(d *time.Duration, minPercent int, maxPercent int) {
	if *d <= 0 || minPercent < 0 || maxPercent < minPercent {
		return
	}
	percent := minPercent + rand.Intn(maxPercent-minPercent+1)
	*d += *d * time.Duration(percent) / 100
}
