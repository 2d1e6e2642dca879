/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package events

import (
	"fmt"
	"sync"
	"time"

	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const deduplicationWindow = 5 * time.Minute

// DeduplicatingRecorder wraps an event recorder and suppresses repeated
// identical events per object within the deduplication window. Reconciliations
// happen much more often than state changes; without this every requeue would
// emit the same event again.
type DeduplicatingRecorder struct {
	recorder record.EventRecorder
	mutex    sync.Mutex
	lastSeen map[string]seenEvent
}

type seenEvent struct {
	digest    string
	timestamp time.Time
}

func NewDeduplicatingRecorder(recorder record.EventRecorder) *DeduplicatingRecorder {
	return &DeduplicatingRecorder{
		recorder: recorder,
		lastSeen: make(map[string]seenEvent),
	}
}

func (r *DeduplicatingRecorder) Event(object client.Object, eventType string, reason string, message string) {
	if r.isDuplicate(object, nil, eventType, reason, message) {
		return
	}
	r.recorder.Event(object, eventType, reason, message)
}

func (r *DeduplicatingRecorder) Eventf(object client.Object, eventType string, reason string, messageFmt string, args ...any) {
	if r.isDuplicate(object, nil, eventType, reason, fmt.Sprintf(messageFmt, args...)) {
		return
	}
	r.recorder.Eventf(object, eventType, reason, messageFmt, args...)
}

func (r *DeduplicatingRecorder) AnnotatedEventf(object client.Object, annotations map[string]string, eventType string, reason string, messageFmt string, args ...any) {
	if r.isDuplicate(object, annotations, eventType, reason, fmt.Sprintf(messageFmt, args...)) {
		return
	}
	r.recorder.AnnotatedEventf(object, annotations, eventType, reason, messageFmt, args...)
}

func (r *DeduplicatingRecorder) isDuplicate(object client.Object, annotations map[string]string, eventType, reason, message string) bool {
	uid := string(object.GetUID())
	digest := calculateDigest(annotations, eventType, reason, message)
	now := time.Now()
	expiry := now.Add(-deduplicationWindow)

	r.mutex.Lock()
	defer r.mutex.Unlock()
	for uid, event := range r.lastSeen {
		if event.timestamp.Before(expiry) {
			delete(r.lastSeen, uid)
		}
	}
	if r.lastSeen[uid].digest == digest {
		return true
	}
	r.lastSeen[uid] = seenEvent{
		digest:    digest,
		timestamp: now,
	}
	return false
}
