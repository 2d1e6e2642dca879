/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package status computes the (kstatus-like) status of Kubernetes resources.
*/
package status
