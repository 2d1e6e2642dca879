/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package templatex

import "bytes"

// AdjustTemplateOutput removes '<no value>' strings from rendered template
// output. Templates are executed with missingkey=zero; a missing key in a
// map[string]any still renders the zero value of any, which the templating
// engine prints as '<no value>'. Helm replaces those occurrences with the
// empty string, and we follow that behaviour.
func AdjustTemplateOutput(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("<no value>"), []byte(""))
}
