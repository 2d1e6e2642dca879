/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package component

import (
	"time"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("testing: util.go", func() {
	Context("testing: sha256hex()", func() {
		It("should generate correct sha256 digest (as hex)", func() {
			Expect(sha256hex([]byte("Liv3p4tchC0mp0nentD1gestFixture"))).To(Equal("72747ef99a164c6ea5601f8b6fb6997bfa0708d7173698456f8ce9fcdc303dcb"))
		})
	})

	Context("testing: capitalize()", func() {
		It("should convert the first letter of the string to upper case", func() {
			Expect(capitalize("secret livepatch-token not found")).To(Equal("Secret livepatch-token not found"))
		})

		It("should upper-case a leading non-ASCII letter", func() {
			Expect(capitalize("überlastet")).To(Equal("Überlastet"))
		})

		It("should leave a leading symbol rune intact", func() {
			message := "✘ server.url-template config not set"
			capitalized := capitalize(message)
			Expect(capitalized).To(Equal(message))
			Expect(utf8.ValidString(capitalized)).To(BeTrue())
		})

		It("should tolerate empty and single-rune strings", func() {
			Expect(capitalize("")).To(Equal(""))
			Expect(capitalize("x")).To(Equal("X"))
		})
	})

	Context("testing: addJitter()", func() {
		It("should increase the duration within the given bounds", func() {
			for i := 0; i < 100; i++ {
				d := 10 * time.Minute
				addJitter(&d, 1, 5)
				Expect(d).To(BeNumerically(">=", 10*time.Minute+6*time.Second))
				Expect(d).To(BeNumerically("<=", 10*time.Minute+30*time.Second))
			}
		})

		It("should leave non-positive durations alone", func() {
			d := time.Duration(0)
			addJitter(&d, 1, 5)
			Expect(d).To(Equal(time.Duration(0)))
		})
	})
})
