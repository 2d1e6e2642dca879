//go:build tools
// +build tools

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package tools

import (
	_ "sigs.k8s.io/controller-tools/cmd/controller-gen"
)
