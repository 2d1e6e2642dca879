/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("testing: util.go", func() {
	Context("testing: formatTimestamp()", func() {
		It("should render ages in the largest fitting unit", func() {
			Expect(formatTimestamp(time.Now().Add(-10 * time.Second))).To(Equal("10s"))
			Expect(formatTimestamp(time.Now().Add(-90 * time.Second))).To(Equal("1m"))
			Expect(formatTimestamp(time.Now().Add(-3 * time.Hour))).To(Equal("3h"))
		})

		It("should count whole days for ages above 24 hours", func() {
			Expect(formatTimestamp(time.Now().Add(-49 * time.Hour))).To(Equal("2d"))
			Expect(formatTimestamp(time.Now().Add(-10 * 24 * time.Hour))).To(Equal("10d"))
		})
	})
})
