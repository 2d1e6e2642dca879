/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package component contains central interfaces (most importantly, the Component interface)
and the generic component reconciler.
*/
package component
