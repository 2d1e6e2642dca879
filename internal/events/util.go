/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package events

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

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
