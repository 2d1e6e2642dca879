/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/go-logr/logr"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/gaborbk/livepatch-k8s-operator/lpctl/cmd"
)

func main() {
	log.SetLogger(logr.Discard())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
