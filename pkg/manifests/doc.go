/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package manifests contains types and functionality around generating (rendering) the
descriptors of a component's dependent objects. Most prominently, this is the Generator
interface itself, a template-based generator implementation, and tooling to enhance or
transform existing generators.
*/
package manifests
