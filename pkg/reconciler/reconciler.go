/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package reconciler

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sap/go-generics/sets"
	"github.com/sap/go-generics/slices"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	apitypes "k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/cluster"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/status"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

const (
	objectReasonCreated     = "Created"
	objectReasonUpdated     = "Updated"
	objectReasonUpdateError = "UpdateError"
	objectReasonDeleted     = "Deleted"
	objectReasonDeleteError = "DeleteError"
)

const (
	scopeUnknown = iota
	scopeNamespaced
	scopeCluster
)

const (
	minOrder = math.MinInt16
	maxOrder = math.MaxInt16
)

// Unchanged objects are re-applied periodically, to revert drift introduced by
// imperative tooling or other controllers.
const forceReapplyPeriod = 60 * time.Minute

var adoptionPolicyByAnnotation = map[string]AdoptionPolicy{
	types.AdoptionPolicyNever:     AdoptionPolicyNever,
	types.AdoptionPolicyIfUnowned: AdoptionPolicyIfUnowned,
	types.AdoptionPolicyAlways:    AdoptionPolicyAlways,
}

var reconcilePolicyByAnnotation = map[string]ReconcilePolicy{
	types.ReconcilePolicyOnObjectChange:            ReconcilePolicyOnObjectChange,
	types.ReconcilePolicyOnObjectOrComponentChange: ReconcilePolicyOnObjectOrComponentChange,
	types.ReconcilePolicyOnce:                      ReconcilePolicyOnce,
}

var updatePolicyByAnnotation = map[string]UpdatePolicy{
	types.UpdatePolicyRecreate: UpdatePolicyRecreate,
	types.UpdatePolicyReplace:  UpdatePolicyReplace,
	types.UpdatePolicySsaMerge: UpdatePolicySsaMerge,
}

var deletePolicyByAnnotation = map[string]DeletePolicy{
	types.DeletePolicyDelete: DeletePolicyDelete,
	types.DeletePolicyOrphan: DeletePolicyOrphan,
}

// ReconcilerOptions are creation options for a Reconciler.
type ReconcilerOptions struct {
	// Which field manager to use in API calls.
	// If unspecified, the reconciler name is used.
	FieldOwner *string
	// Which finalizer to use.
	// If unspecified, the reconciler name is used.
	Finalizer *string
	// How to react if a dependent object exists but has no or a different owner.
	// If unspecified, AdoptionPolicyIfUnowned is assumed.
	// Can be overridden by annotation on object level.
	AdoptionPolicy *AdoptionPolicy
	// How to perform updates to dependent objects.
	// If unspecified, UpdatePolicyReplace is assumed.
	// Can be overridden by annotation on object level.
	UpdatePolicy *UpdatePolicy
	// How to perform deletion of dependent objects.
	// If unspecified, DeletePolicyDelete is assumed.
	// Can be overridden by annotation on object level.
	DeletePolicy *DeletePolicy
	// Whether namespaces referenced by dependent objects are auto-created if missing.
	// If unspecified, true is assumed.
	CreateMissingNamespaces *bool
	// How to analyze the state of the dependent objects.
	// If unspecified, a kstatus based implementation is used.
	StatusAnalyzer status.StatusAnalyzer
	// Prometheus metrics to be populated by the reconciler.
	Metrics ReconcilerMetrics
}

// ReconcilerMetrics defines metrics that the reconciler can populate.
// Metrics specified as nil will be ignored.
type ReconcilerMetrics struct {
	ReadCounter   prometheus.Counter
	CreateCounter prometheus.Counter
	UpdateCounter prometheus.Counter
	DeleteCounter prometheus.Counter
}

// Reconciler manages specified objects in the given target cluster.
type Reconciler struct {
	fieldOwner                   string
	finalizer                    string
	client                       cluster.Client
	statusAnalyzer               status.StatusAnalyzer
	metrics                      ReconcilerMetrics
	adoptionPolicy               AdoptionPolicy
	reconcilePolicy              ReconcilePolicy
	updatePolicy                 UpdatePolicy
	deletePolicy                 DeletePolicy
	createMissingNamespaces      bool
	labelKeyOwnerId              string
	annotationKeyOwnerId         string
	annotationKeyDigest          string
	annotationKeyAdoptionPolicy  string
	annotationKeyReconcilePolicy string
	annotationKeyUpdatePolicy    string
	annotationKeyDeletePolicy    string
	annotationKeyApplyOrder      string
	annotationKeyDeleteOrder     string
}

// NewReconciler creates a new reconciler. The passed name should be fully
// qualified; by default it will be used as field owner and finalizer, and it
// prefixes all labels and annotations which the reconciler maintains on
// dependent objects.
func NewReconciler(name string, clnt cluster.Client, options ReconcilerOptions) *Reconciler {
	if options.FieldOwner == nil {
		options.FieldOwner = &name
	}
	if options.Finalizer == nil {
		options.Finalizer = &name
	}
	if options.AdoptionPolicy == nil {
		options.AdoptionPolicy = ref(AdoptionPolicyIfUnowned)
	}
	if options.UpdatePolicy == nil {
		options.UpdatePolicy = ref(UpdatePolicyReplace)
	}
	if options.DeletePolicy == nil {
		options.DeletePolicy = ref(DeletePolicyDelete)
	}
	if options.CreateMissingNamespaces == nil {
		options.CreateMissingNamespaces = ref(true)
	}
	if options.StatusAnalyzer == nil {
		options.StatusAnalyzer = status.NewStatusAnalyzer(name)
	}

	return &Reconciler{
		fieldOwner:                   *options.FieldOwner,
		finalizer:                    *options.Finalizer,
		client:                       clnt,
		statusAnalyzer:               options.StatusAnalyzer,
		metrics:                      options.Metrics,
		adoptionPolicy:               *options.AdoptionPolicy,
		reconcilePolicy:              ReconcilePolicyOnObjectChange,
		updatePolicy:                 *options.UpdatePolicy,
		deletePolicy:                 *options.DeletePolicy,
		createMissingNamespaces:      *options.CreateMissingNamespaces,
		labelKeyOwnerId:              name + "/" + types.LabelKeySuffixOwnerId,
		annotationKeyOwnerId:         name + "/" + types.AnnotationKeySuffixOwnerId,
		annotationKeyDigest:          name + "/" + types.AnnotationKeySuffixDigest,
		annotationKeyAdoptionPolicy:  name + "/" + types.AnnotationKeySuffixAdoptionPolicy,
		annotationKeyReconcilePolicy: name + "/" + types.AnnotationKeySuffixReconcilePolicy,
		annotationKeyUpdatePolicy:    name + "/" + types.AnnotationKeySuffixUpdatePolicy,
		annotationKeyDeletePolicy:    name + "/" + types.AnnotationKeySuffixDeletePolicy,
		annotationKeyApplyOrder:      name + "/" + types.AnnotationKeySuffixApplyOrder,
		annotationKeyDeleteOrder:     name + "/" + types.AnnotationKeySuffixDeleteOrder,
	}
}

// Apply the given object manifests to the target cluster and maintain the inventory. That means:
//   - non-existent objects will be created
//   - existing objects will be updated if there is a drift (see below)
//   - redundant objects will be removed.
//
// Existing objects will only be updated or deleted if the owner id check is successful; that means:
//   - the object's owner id matches the specified ownerId or
//   - the object's owner id does not match the specified ownerId, and the effective adoption policy is AdoptionPolicyAlways or
//   - the object has no or empty owner id set, and the effective adoption policy is AdoptionPolicyAlways or AdoptionPolicyIfUnowned.
//
// Objects which are instances of namespaced types will be placed into the namespace passed to Apply(), if they have
// no namespace defined in their manifest. An update of an existing object will be performed if it is considered to
// be out of sync; that means:
//   - the object's manifest has changed, and the effective reconcile policy is ReconcilePolicyOnObjectChange or ReconcilePolicyOnObjectOrComponentChange or
//   - the specified component revision has changed and the effective reconcile policy is ReconcilePolicyOnObjectOrComponentChange or
//   - periodically after forceReapplyPeriod.
//
// The update itself will be done as follows:
//   - if the effective update policy is UpdatePolicyReplace, a http PUT request will be sent to the Kubernetes API
//   - if the effective update policy is UpdatePolicySsaMerge, a server-side-apply http PATCH request will be sent,
//     leaving foreign non-conflicting fields untouched
//   - if the effective update policy is UpdatePolicyRecreate, the object will be deleted and recreated.
//
// Objects will be applied and deleted in waves, according to their apply/delete order; a wave is only started once
// all objects of the previous wave have a ready state.
//
// This method will change the passed inventory (add or remove elements, change elements). If Apply() returns true,
// then all objects are successfully reconciled; otherwise, if it returns false, the caller should re-call it
// periodically, until it returns true. In any case, the passed inventory should match the state of the inventory
// after the previous invocation of Apply(); usually, the caller saves the inventory after calling Apply(), and
// loads it before calling Apply(). The namespace and ownerId arguments should not be changed across subsequent
// invocations of Apply(); the componentRevision should be incremented only.
func (r *Reconciler) Apply(ctx context.Context, inventory *[]*InventoryItem, objects []client.Object, namespace string, ownerId string, componentRevision int64) (bool, error) {
	var err error
	log := log.FromContext(ctx)

	hashedOwnerId := sha256base32([]byte(ownerId))

	// perform some initial validation
	for _, object := range objects {
		if object.GetGenerateName() != "" {
			return false, fmt.Errorf("object %s specifies metadata.generateName (but dependent objects are not allowed to do so)", types.ObjectKeyToString(object))
		}
	}

	// normalize objects; that means:
	// - check that unstructured objects have valid type information set, and convert them to their concrete type if known to the scheme
	// - check that non-unstructured types are known to the scheme, and validate/set their type information
	objects, err = normalizeObjects(objects, r.client.Scheme())
	if err != nil {
		return false, errors.Wrap(err, "error normalizing objects")
	}

	// perform cleanup on object manifests
	for _, object := range objects {
		removeLabel(object, r.labelKeyOwnerId)
		removeAnnotation(object, r.annotationKeyOwnerId)
		removeAnnotation(object, r.annotationKeyDigest)
	}

	// default the namespace of namespaced objects which have no namespace set
	for _, object := range objects {
		// note: due to the normalization done before, every object has a valid object kind set
		gvk := object.GetObjectKind().GroupVersionKind()

		restMapping, err := r.client.RESTMapper().RESTMapping(gvk.GroupKind(), gvk.Version)
		if err != nil {
			return false, errors.Wrapf(err, "error getting rest mapping for object %s", types.ObjectKeyToString(object))
		}
		scope := scopeFromRestMapping(restMapping)

		if object.GetNamespace() == "" && scope == scopeNamespaced {
			object.SetNamespace(namespace)
		}
		if object.GetNamespace() != "" && scope == scopeCluster {
			object.SetNamespace("")
		}
	}

	// check that there are no duplicate objects
	objectKeys := sets.New[string]()
	for _, object := range objects {
		objectKey := types.ObjectKeyToString(object)
		if sets.Contains(objectKeys, objectKey) {
			return false, fmt.Errorf("duplicate object %s", objectKey)
		}
		sets.Add(objectKeys, objectKey)
	}

	// validate annotations
	for _, object := range objects {
		if _, err := r.getAdoptionPolicy(object); err != nil {
			return false, errors.Wrapf(err, "error validating object %s", types.ObjectKeyToString(object))
		}
		if _, err := r.getReconcilePolicy(object); err != nil {
			return false, errors.Wrapf(err, "error validating object %s", types.ObjectKeyToString(object))
		}
		if _, err := r.getUpdatePolicy(object); err != nil {
			return false, errors.Wrapf(err, "error validating object %s", types.ObjectKeyToString(object))
		}
		if _, err := r.getDeletePolicy(object); err != nil {
			return false, errors.Wrapf(err, "error validating object %s", types.ObjectKeyToString(object))
		}
		if _, err := r.getApplyOrder(object); err != nil {
			return false, errors.Wrapf(err, "error validating object %s", types.ObjectKeyToString(object))
		}
		if _, err := r.getDeleteOrder(object); err != nil {
			return false, errors.Wrapf(err, "error validating object %s", types.ObjectKeyToString(object))
		}
	}

	// define getter functions for later usage
	getAdoptionPolicy := func(object client.Object) AdoptionPolicy {
		// note: this must() is ok because we checked the generated objects above, and this function will be called for these objects only
		return must(r.getAdoptionPolicy(object))
	}
	getReconcilePolicy := func(object client.Object) ReconcilePolicy {
		// note: this must() is ok because we checked the generated objects above, and this function will be called for these objects only
		return must(r.getReconcilePolicy(object))
	}
	getUpdatePolicy := func(object client.Object) UpdatePolicy {
		// note: this must() is ok because we checked the generated objects above, and this function will be called for these objects only
		return must(r.getUpdatePolicy(object))
	}
	getDeletePolicy := func(object client.Object) DeletePolicy {
		// note: this must() is ok because we checked the generated objects above, and this function will be called for these objects only
		return must(r.getDeletePolicy(object))
	}
	getApplyOrder := func(object client.Object) int {
		// note: this must() is ok because we checked the generated objects above, and this function will be called for these objects only
		return must(r.getApplyOrder(object))
	}
	getDeleteOrder := func(object client.Object) int {
		// note: this must() is ok because we checked the generated objects above, and this function will be called for these objects only
		return must(r.getDeleteOrder(object))
	}

	// prepare (add/update) new inventory with target objects
	newInventory := slices.Collect(*inventory, func(item *InventoryItem) *InventoryItem { return item.DeepCopy() })
	numAdded := 0
	for _, object := range objects {
		// retrieve inventory item belonging to this object (if existing)
		item := getItem(newInventory, object)

		// calculate object digest
		// note: if the effective reconcile policy of an object changes, it will always be reconciled at least one more time;
		// this is in particular the case if the policy changes from or to ReconcilePolicyOnce.
		digest, err := calculateObjectDigest(object, componentRevision, getReconcilePolicy(object))
		if err != nil {
			return false, errors.Wrapf(err, "error calculating digest for object %s", types.ObjectKeyToString(object))
		}

		// if item was not found, append an empty item
		if item == nil {
			// fetch object (if existing)
			existingObject, err := r.readObject(ctx, object)
			if err != nil {
				return false, errors.Wrapf(err, "error reading object %s", types.ObjectKeyToString(object))
			}
			// check ownership
			// note: failing already here in case of a conflict prevents problems during apply and, in particular, during deletion
			if existingObject != nil {
				adoptionPolicy := getAdoptionPolicy(object)
				existingOwnerId := existingObject.GetLabels()[r.labelKeyOwnerId]
				if existingOwnerId == "" {
					if adoptionPolicy != AdoptionPolicyIfUnowned && adoptionPolicy != AdoptionPolicyAlways {
						return false, fmt.Errorf("found existing object %s without owner", types.ObjectKeyToString(object))
					}
				} else if existingOwnerId != hashedOwnerId {
					if adoptionPolicy != AdoptionPolicyAlways {
						return false, fmt.Errorf("owner conflict; object %s is owned by %s", types.ObjectKeyToString(object), existingObject.GetAnnotations()[r.annotationKeyOwnerId])
					}
				}
			}
			newInventory = append(newInventory, &InventoryItem{})
			item = newInventory[len(newInventory)-1]
			numAdded++
		}

		// update item
		gvk := object.GetObjectKind().GroupVersionKind()
		item.Group = gvk.Group
		item.Version = gvk.Version
		item.Kind = gvk.Kind
		item.Namespace = object.GetNamespace()
		item.Name = object.GetName()
		item.AdoptionPolicy = getAdoptionPolicy(object)
		item.ReconcilePolicy = getReconcilePolicy(object)
		item.UpdatePolicy = getUpdatePolicy(object)
		item.DeletePolicy = getDeletePolicy(object)
		item.ApplyOrder = getApplyOrder(object)
		item.DeleteOrder = getDeleteOrder(object)
		if digest != item.Digest {
			item.Digest = digest
			item.Phase = PhaseScheduledForApplication
			item.Status = status.InProgressStatus
		}
	}

	// mark obsolete items (clear digest) in new inventory
	for _, item := range newInventory {
		found := false
		for _, object := range objects {
			if item.Matches(object) {
				found = true
				break
			}
		}
		if !found && item.Digest != "" {
			item.Digest = ""
			item.Phase = PhaseScheduledForDeletion
			item.Status = status.TerminatingStatus
		}
	}

	// validate new inventory:
	// - check that all contained objects have apply-order greater than or equal to the according namespace
	// - check that all contained objects have delete-order less than or equal to the according namespace
	// - check that no namespaces are about to be deleted (empty digest) unless all contained objects are as well
	for _, item := range newInventory {
		if !isNamespace(item) {
			continue
		}
		for _, _item := range newInventory {
			if _item.Namespace != item.Name {
				continue
			}
			if _item.ApplyOrder < item.ApplyOrder {
				return false, fmt.Errorf("error validating object set (%s): namespaced object must not have an apply order lesser than the one of its namespace", _item)
			}
			if _item.DeleteOrder > item.DeleteOrder {
				return false, fmt.Errorf("error validating object set (%s): namespaced object must not have a delete order greater than the one of its namespace", _item)
			}
			if _item.Digest != "" && item.Digest == "" {
				return false, fmt.Errorf("error validating object set (%s): namespaced object is not being deleted, but the namespace is", _item)
			}
		}
	}

	// accept new inventory for further processing, put into right order for future deletion
	*inventory = sortObjectsForDelete(newInventory)

	// trigger another reconcile if something was added (to be sure that it is persisted)
	if numAdded > 0 {
		return false, nil
	}

	// note: after this point it is guaranteed that
	// - the in-memory inventory reflects the target state
	// - the persisted inventory at least has the same object keys as the in-memory inventory
	// now it is about to synchronize the cluster state with the inventory

	// create missing namespaces
	if r.createMissingNamespaces {
		for _, namespace := range findMissingNamespaces(objects) {
			if err := r.client.Get(ctx, apitypes.NamespacedName{Name: namespace}, &corev1.Namespace{}); err != nil {
				if !apierrors.IsNotFound(err) {
					return false, errors.Wrapf(err, "error reading namespace %s", namespace)
				}
				if err := r.client.Create(ctx, &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: namespace}}, client.FieldOwner(r.fieldOwner)); err != nil {
					return false, errors.Wrapf(err, "error creating namespace %s", namespace)
				}
			}
		}
	}

	// put objects into right order for applying
	objects = sortObjectsForApply(objects, getApplyOrder)

	// apply objects and maintain inventory;
	// objects are applied (i.e. created/updated) in waves according to their apply order;
	// that means, only if all objects of a wave are ready, the next wave will be processed
	numUnready := 0
	for k, object := range objects {
		// retrieve inventory item corresponding to this object
		item := mustGetItem(*inventory, object)

		// retrieve object order
		applyOrder := getApplyOrder(object)

		if k == 0 || getApplyOrder(objects[k-1]) < applyOrder {
			log.V(2).Info("begin of apply wave", "order", applyOrder)
		}

		// compute and update status, and apply (create or update) the object if necessary
		// note: item.Phase is one of PhaseScheduledForApplication, PhaseCreating, PhaseUpdating, PhaseReady

		// fetch object (if existing)
		existingObject, err := r.readObject(ctx, item)
		if err != nil {
			return false, errors.Wrapf(err, "error reading object %s", item)
		}

		setLabel(object, r.labelKeyOwnerId, hashedOwnerId)
		setAnnotation(object, r.annotationKeyOwnerId, ownerId)
		setAnnotation(object, r.annotationKeyDigest, item.Digest)

		updatePolicy := getUpdatePolicy(object)
		now := time.Now()
		if existingObject == nil {
			if err := r.createObject(ctx, object, updatePolicy); err != nil {
				return false, errors.Wrapf(err, "error creating object %s", item)
			}
			item.Phase = PhaseCreating
			item.Status = status.InProgressStatus
			item.LastAppliedAt = &metav1.Time{Time: now}
			numUnready++
		} else if existingObject.GetDeletionTimestamp().IsZero() &&
			(existingObject.GetAnnotations()[r.annotationKeyDigest] != item.Digest || item.LastAppliedAt == nil || item.LastAppliedAt.Time.Before(now.Add(-forceReapplyPeriod))) {
			switch updatePolicy {
			case UpdatePolicyRecreate:
				if err := r.deleteObject(ctx, object, existingObject, hashedOwnerId); err != nil {
					return false, errors.Wrapf(err, "error deleting (while recreating) object %s", item)
				}
			default:
				if err := r.updateObject(ctx, object, existingObject, updatePolicy); err != nil {
					return false, errors.Wrapf(err, "error updating object %s", item)
				}
			}
			item.Phase = PhaseUpdating
			item.Status = status.InProgressStatus
			item.LastAppliedAt = &metav1.Time{Time: now}
			numUnready++
		} else {
			existingStatus, err := r.statusAnalyzer.ComputeStatus(existingObject)
			if err != nil {
				return false, errors.Wrapf(err, "error checking status of object %s", item)
			}
			if existingObject.GetDeletionTimestamp().IsZero() && existingStatus == status.CurrentStatus {
				item.Phase = PhaseReady
			} else {
				numUnready++
			}
			item.Status = existingStatus
		}

		// note: after this point, when numUnready is zero, then this and all previous objects are in PhaseReady

		// if this is the last object of a wave, trigger another reconcile unless everything so far is ready
		if k == len(objects)-1 || getApplyOrder(objects[k+1]) > applyOrder {
			log.V(2).Info("end of apply wave", "order", applyOrder)
			if numUnready > 0 {
				return false, nil
			}
		}
	}

	// delete redundant objects and maintain inventory;
	// objects are deleted in waves according to their delete order;
	// that means, only if all redundant objects of a wave are gone, the next wave will be
	// processed; namespaces will only be deleted if they are not used by any object in the
	// inventory (note that this may cause deadlocks)
	numToBeDeleted := 0
	for k, item := range *inventory {
		if k == 0 || (*inventory)[k-1].DeleteOrder < item.DeleteOrder {
			log.V(2).Info("begin of deletion wave", "order", item.DeleteOrder)
		}

		if item.Phase == PhaseScheduledForDeletion || item.Phase == PhaseDeleting {
			// fetch object (if existing)
			existingObject, err := r.readObject(ctx, item)
			if err != nil {
				return false, errors.Wrapf(err, "error reading object %s", item)
			}

			// note: the effective deletion policy is always the last known one of the dependent object,
			// that is, the one determined when the object was contained in the manifests the last time;
			// just-in-time changes of the default deletion policy on the component thus have no impact
			// on the deletion policy of redundant objects

			switch item.Phase {
			case PhaseScheduledForDeletion:
				// delete namespaces after all contained inventory items
				if isNamespace(item) && isNamespaceUsed(*inventory, item.Name) {
					numToBeDeleted++
				} else if item.DeletePolicy == DeletePolicyOrphan {
					item.Phase = ""
				} else {
					// note: here is a theoretical risk that we delete an existing foreign object, because informers are not yet synced
					// however not sending the delete request is also not an option, because this might lead to orphaned own dependents
					if err := r.deleteObject(ctx, item, existingObject, hashedOwnerId); err != nil {
						return false, errors.Wrapf(err, "error deleting object %s", item)
					}
					item.Phase = PhaseDeleting
					item.Status = status.TerminatingStatus
					numToBeDeleted++
				}
			case PhaseDeleting:
				if existingObject == nil {
					// if object is gone, we can remove it from inventory
					item.Phase = ""
				} else if !existingObject.GetDeletionTimestamp().IsZero() {
					// object is still there and deleting, waiting until it goes away
					numToBeDeleted++
				} else if existingObject.GetLabels()[r.labelKeyOwnerId] != hashedOwnerId {
					// object is there but not deleting; if we are not owning it that means that somebody else has
					// recreated it in the meantime; so we consider this as not our problem and remove it from inventory
					log.V(1).Info("orphaning resurrected object (probably it was recreated by someone else)", "key", types.ObjectKeyToString(item))
					item.Phase = ""
				} else {
					// object is there, not deleting, but we own it; that is really strange and should actually not happen
					return false, fmt.Errorf("object %s was already deleted but has no deletion timestamp", types.ObjectKeyToString(item))
				}
			default:
				// note: any other phase value would indicate a severe code problem, so we want to see the panic in that case
				panic("this cannot happen")
			}
		}

		// trigger another reconcile if this is the last object of the wave, and some deletions are not yet finished
		if k == len(*inventory)-1 || (*inventory)[k+1].DeleteOrder > item.DeleteOrder {
			log.V(2).Info("end of deletion wave", "order", item.DeleteOrder)
			if numToBeDeleted > 0 {
				break
			}
		}
	}

	*inventory = slices.Select(*inventory, func(item *InventoryItem) bool { return item.Phase != "" })

	// trigger another reconcile if any to-be-deleted objects are left
	if numToBeDeleted > 0 {
		return false, nil
	}

	return true, nil
}

// Delete objects stored in the inventory from the target cluster and maintain the inventory.
// Objects will be deleted in waves, according to their delete order (as stored in the inventory); that means, the
// deletion of objects having a certain delete order will only start if all objects with lower delete order are gone.
// Objects which have an effective Orphan deletion policy will not be touched (remain in the cluster), but will no
// longer appear in the inventory.
//
// This method will change the passed inventory (remove elements, change elements). If Delete() returns true, then
// all objects are gone; otherwise, if it returns false, the caller should recall it timely, until it returns true.
// In any case, the passed inventory should match the state of the inventory after the previous invocation of
// Delete(); usually, the caller saves the inventory after calling Delete(), and loads it before calling Delete().
func (r *Reconciler) Delete(ctx context.Context, inventory *[]*InventoryItem, ownerId string) (bool, error) {
	log := log.FromContext(ctx)

	hashedOwnerId := sha256base32([]byte(ownerId))

	numToBeDeleted := 0
	for k, item := range *inventory {
		if k == 0 || (*inventory)[k-1].DeleteOrder < item.DeleteOrder {
			log.V(2).Info("begin of deletion wave", "order", item.DeleteOrder)
		}

		// fetch object (if existing)
		existingObject, err := r.readObject(ctx, item)
		if err != nil {
			return false, errors.Wrapf(err, "error reading object %s", item)
		}

		switch item.Phase {
		case PhaseDeleting:
			if existingObject == nil {
				// if object is gone, we can remove it from inventory
				item.Phase = ""
			} else if !existingObject.GetDeletionTimestamp().IsZero() {
				// object is still there and deleting, waiting until it goes away
				numToBeDeleted++
			} else if existingObject.GetLabels()[r.labelKeyOwnerId] != hashedOwnerId {
				// object is there but not deleting; if we are not owning it that means that somebody else has
				// recreated it in the meantime; so we consider this as not our problem and remove it from inventory
				log.V(1).Info("orphaning resurrected object (probably it was recreated by someone else)", "key", types.ObjectKeyToString(item))
				item.Phase = ""
			} else {
				// object is there, not deleting, but we own it; that is really strange and should actually not happen
				return false, fmt.Errorf("object %s was already deleted but has no deletion timestamp", types.ObjectKeyToString(item))
			}
		default:
			// delete namespaces after all contained inventory items
			if isNamespace(item) && isNamespaceUsed(*inventory, item.Name) {
				numToBeDeleted++
			} else if item.DeletePolicy == DeletePolicyOrphan {
				item.Phase = ""
			} else {
				// note: here is a theoretical risk that we delete an existing foreign object, because informers are not yet synced
				// however not sending the delete request is also not an option, because this might lead to orphaned own dependents
				if err := r.deleteObject(ctx, item, existingObject, hashedOwnerId); err != nil {
					return false, errors.Wrapf(err, "error deleting object %s", item)
				}
				item.Phase = PhaseDeleting
				item.Status = status.TerminatingStatus
				numToBeDeleted++
			}
		}

		// trigger another reconcile if this is the last object of the wave, and some deletions are not yet completed
		if k == len(*inventory)-1 || (*inventory)[k+1].DeleteOrder > item.DeleteOrder {
			log.V(2).Info("end of deletion wave", "order", item.DeleteOrder)
			if numToBeDeleted > 0 {
				break
			}
		}
	}

	*inventory = slices.Select(*inventory, func(item *InventoryItem) bool { return item.Phase != "" })

	return len(*inventory) == 0, nil
}

// IsDeletionAllowed checks whether the object set defined by the inventory can be deleted.
// Since this reconciler does not manage type-providing objects (such as custom resource
// definitions or api services), deletion is always possible.
func (r *Reconciler) IsDeletionAllowed(ctx context.Context, inventory *[]*InventoryItem, ownerId string) (bool, string, error) {
	return true, "", nil
}

// read object and return as unstructured
func (r *Reconciler) readObject(ctx context.Context, key types.ObjectKey) (*unstructured.Unstructured, error) {
	if counter := r.metrics.ReadCounter; counter != nil {
		counter.Inc()
	}

	object := &unstructured.Unstructured{}
	object.SetGroupVersionKind(key.GetObjectKind().GroupVersionKind())
	if err := r.client.Get(ctx, apitypes.NamespacedName{Namespace: key.GetNamespace(), Name: key.GetName()}, object); err != nil {
		if apimeta.IsNoMatchError(err) || apierrors.IsNotFound(err) {
			object = nil
		} else {
			return nil, err
		}
	}
	return object, nil
}

// create object; object may be a concrete type or unstructured; in any case, type meta must be populated
func (r *Reconciler) createObject(ctx context.Context, object client.Object, updatePolicy UpdatePolicy) (err error) {
	if counter := r.metrics.CreateCounter; counter != nil {
		counter.Inc()
	}

	defer func() {
		if err == nil {
			r.client.EventRecorder().Event(object, corev1.EventTypeNormal, objectReasonCreated, "Object successfully created")
		}
	}()

	data, err := runtime.DefaultUnstructuredConverter.ToUnstructured(object)
	if err != nil {
		return err
	}
	object = &unstructured.Unstructured{Object: data}
	// note: clearing managedFields is anyway required for ssa; but also in the create (post) case it does not harm
	object.SetManagedFields(nil)
	// create the object right from the start with the right managed fields operation (Apply or Update), in order
	// to avoid having to patch the managed fields during future update calls
	switch updatePolicy {
	case UpdatePolicySsaMerge:
		// set the target resource version to an impossible value; this will produce a 409 conflict in case the object already exists
		object.SetResourceVersion("1")
		return r.client.Patch(ctx, object, client.Apply, client.FieldOwner(r.fieldOwner))
	default:
		return r.client.Create(ctx, object, client.FieldOwner(r.fieldOwner))
	}
}

// update object; object may be a concrete type or unstructured; in any case, type meta must be populated;
// existingObject is required, and should represent the last-read state of the object; it must not have a
// deletionTimestamp set; object may have a resourceVersion; if it does not, the resourceVersion of existingObject
// will be used for conflict checks during put/patch;
// if updatePolicy equals UpdatePolicyReplace, an update (put) will be performed, and finalizers of existingObject
// will be copied; if updatePolicy equals UpdatePolicySsaMerge, a conflict-forcing server-side-apply patch will be
// performed
func (r *Reconciler) updateObject(ctx context.Context, object client.Object, existingObject *unstructured.Unstructured, updatePolicy UpdatePolicy) (err error) {
	if counter := r.metrics.UpdateCounter; counter != nil {
		counter.Inc()
	}

	defer func() {
		if err == nil {
			r.client.EventRecorder().Event(object, corev1.EventTypeNormal, objectReasonUpdated, "Object successfully updated")
		} else {
			r.client.EventRecorder().Eventf(existingObject, corev1.EventTypeWarning, objectReasonUpdateError, "Error updating object: %s", err)
		}
	}()

	log := log.FromContext(ctx).WithValues("object", types.ObjectKeyToString(object))

	if !existingObject.GetDeletionTimestamp().IsZero() {
		// note: we must not update objects which are in deletion (e.g. to avoid unintentionally clearing finalizers), so we want to see the panic in that case
		panic("this cannot happen")
	}

	data, err := runtime.DefaultUnstructuredConverter.ToUnstructured(object)
	if err != nil {
		return err
	}
	object = &unstructured.Unstructured{Object: data}
	// it is allowed that target object contains a resource version; otherwise, we set the resource version to the
	// one of the existing object, in order to ensure that we do not unintentionally overwrite a state different
	// from the one we have read; note that the api server performs a resource version conflict check not only in
	// case of update (put), but also for ssa (patch)
	if object.GetResourceVersion() == "" {
		object.SetResourceVersion(existingObject.GetResourceVersion())
	}
	// note: clearing managedFields is anyway required for ssa; but also in the replace (put, update) case it does
	// not harm; because replace will only claim fields which are new or which have changed; the field owner of
	// declared (but unmodified) fields will not be touched
	object.SetManagedFields(nil)
	switch updatePolicy {
	case UpdatePolicySsaMerge:
		// note: even with no manager prefixes given, replaceFieldManager() will reclaim fields created by us through
		// an Update operation, that is through a create or update call; this may be necessary, if the update policy
		// for the object changed (globally or per-object)
		if managedFields, changed, err := replaceFieldManager(existingObject.GetManagedFields(), nil, r.fieldOwner); err != nil {
			return err
		} else if changed {
			log.V(1).Info("adjusting field managers as preparation of ssa")
			gvk := object.GetObjectKind().GroupVersionKind()
			obj := &metav1.PartialObjectMetadata{
				TypeMeta: metav1.TypeMeta{
					APIVersion: gvk.GroupVersion().String(),
					Kind:       gvk.Kind,
				},
				ObjectMeta: metav1.ObjectMeta{
					Namespace: object.GetNamespace(),
					Name:      object.GetName(),
				},
			}
			preparePatch := []map[string]any{
				{"op": "replace", "path": "/metadata/managedFields", "value": managedFields},
				{"op": "replace", "path": "/metadata/resourceVersion", "value": object.GetResourceVersion()},
			}
			// note: this must() is ok because marshalling the patch should always work
			if err := r.client.Patch(ctx, obj, client.RawPatch(apitypes.JSONPatchType, must(json.Marshal(preparePatch))), client.FieldOwner(r.fieldOwner)); err != nil {
				return err
			}
			object.SetResourceVersion(obj.GetResourceVersion())
		}
		return r.client.Patch(ctx, object, client.Apply, client.FieldOwner(r.fieldOwner), client.ForceOwnership)
	default:
		for _, finalizer := range existingObject.GetFinalizers() {
			controllerutil.AddFinalizer(object, finalizer)
		}
		return r.client.Update(ctx, object, client.FieldOwner(r.fieldOwner))
	}
}

// delete object; existingObject is optional; if present, its resourceVersion will be used as a delete precondition;
// deletion is always performed with background propagation
func (r *Reconciler) deleteObject(ctx context.Context, key types.ObjectKey, existingObject *unstructured.Unstructured, hashedOwnerId string) (err error) {
	if counter := r.metrics.DeleteCounter; counter != nil {
		counter.Inc()
	}

	defer func() {
		if existingObject == nil {
			return
		}
		if err == nil {
			r.client.EventRecorder().Event(existingObject, corev1.EventTypeNormal, objectReasonDeleted, "Object successfully deleted")
		} else {
			r.client.EventRecorder().Eventf(existingObject, corev1.EventTypeWarning, objectReasonDeleteError, "Error deleting object: %s", err)
		}
	}()

	if existingObject != nil && existingObject.GetLabels()[r.labelKeyOwnerId] != hashedOwnerId {
		return fmt.Errorf("owner conflict; object %s has no or different owner", types.ObjectKeyToString(key))
	}

	object := &unstructured.Unstructured{}
	object.SetGroupVersionKind(key.GetObjectKind().GroupVersionKind())
	object.SetNamespace(key.GetNamespace())
	object.SetName(key.GetName())
	deleteOptions := &client.DeleteOptions{PropagationPolicy: ref(metav1.DeletePropagationBackground)}
	if existingObject != nil {
		deleteOptions.Preconditions = &metav1.Preconditions{
			ResourceVersion: ref(existingObject.GetResourceVersion()),
		}
	}
	if err := r.client.Delete(ctx, object, deleteOptions); err != nil {
		if apimeta.IsNoMatchError(err) || apierrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *Reconciler) getAdoptionPolicy(object client.Object) (AdoptionPolicy, error) {
	adoptionPolicy := strcase.ToKebab(object.GetAnnotations()[r.annotationKeyAdoptionPolicy])
	switch adoptionPolicy {
	case "":
		return r.adoptionPolicy, nil
	case types.AdoptionPolicyNever, types.AdoptionPolicyIfUnowned, types.AdoptionPolicyAlways:
		return adoptionPolicyByAnnotation[adoptionPolicy], nil
	default:
		return "", fmt.Errorf("invalid value for annotation %s: %s", r.annotationKeyAdoptionPolicy, adoptionPolicy)
	}
}

func (r *Reconciler) getReconcilePolicy(object client.Object) (ReconcilePolicy, error) {
	reconcilePolicy := strcase.ToKebab(object.GetAnnotations()[r.annotationKeyReconcilePolicy])
	switch reconcilePolicy {
	case "":
		return r.reconcilePolicy, nil
	case types.ReconcilePolicyOnObjectChange, types.ReconcilePolicyOnObjectOrComponentChange, types.ReconcilePolicyOnce:
		return reconcilePolicyByAnnotation[reconcilePolicy], nil
	default:
		return "", fmt.Errorf("invalid value for annotation %s: %s", r.annotationKeyReconcilePolicy, reconcilePolicy)
	}
}

func (r *Reconciler) getUpdatePolicy(object client.Object) (UpdatePolicy, error) {
	updatePolicy := strcase.ToKebab(object.GetAnnotations()[r.annotationKeyUpdatePolicy])
	switch updatePolicy {
	case "":
		return r.updatePolicy, nil
	case types.UpdatePolicyRecreate, types.UpdatePolicyReplace, types.UpdatePolicySsaMerge:
		return updatePolicyByAnnotation[updatePolicy], nil
	default:
		return "", fmt.Errorf("invalid value for annotation %s: %s", r.annotationKeyUpdatePolicy, updatePolicy)
	}
}

func (r *Reconciler) getDeletePolicy(object client.Object) (DeletePolicy, error) {
	deletePolicy := strcase.ToKebab(object.GetAnnotations()[r.annotationKeyDeletePolicy])
	switch deletePolicy {
	case "":
		return r.deletePolicy, nil
	case types.DeletePolicyDelete, types.DeletePolicyOrphan:
		return deletePolicyByAnnotation[deletePolicy], nil
	default:
		return "", fmt.Errorf("invalid value for annotation %s: %s", r.annotationKeyDeletePolicy, deletePolicy)
	}
}

func (r *Reconciler) getApplyOrder(object client.Object) (int, error) {
	value, ok := object.GetAnnotations()[r.annotationKeyApplyOrder]
	if !ok {
		return 0, nil
	}
	applyOrder, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value for annotation %s: %s", r.annotationKeyApplyOrder, value)
	}
	if err := checkRange(applyOrder, minOrder, maxOrder); err != nil {
		return 0, errors.Wrapf(err, "invalid value for annotation %s: %s", r.annotationKeyApplyOrder, value)
	}
	return applyOrder, nil
}

func (r *Reconciler) getDeleteOrder(object client.Object) (int, error) {
	value, ok := object.GetAnnotations()[r.annotationKeyDeleteOrder]
	if !ok {
		return 0, nil
	}
	deleteOrder, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value for annotation %s: %s", r.annotationKeyDeleteOrder, value)
	}
	if err := checkRange(deleteOrder, minOrder, maxOrder); err != nil {
		return 0, errors.Wrapf(err, "invalid value for annotation %s: %s", r.annotationKeyDeleteOrder, value)
	}
	return deleteOrder, nil
}
