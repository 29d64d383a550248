package crdcheck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apiextensionsclient "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/giantswarm/finalizerkit/internal/core"
)

// pollInterval is the interval between establishment checks. CRDs establish
// within a couple of seconds on a healthy apiserver; 100ms keeps the wait
// responsive without hammering the API.
const pollInterval = 100 * time.Millisecond

// longWaitThreshold is the duration after which WaitEstablished logs a
// warning to help diagnose a stuck CRD before the caller's context expires.
const longWaitThreshold = 10 * time.Second

// Established reports whether the CRD backing res currently has the
// Established condition set to True. A missing CRD yields (false, nil);
// any other API failure is returned.
func Established(ctx context.Context, client apiextensionsclient.Interface, res core.Resource) (bool, error) {
	crd, err := client.ApiextensionsV1().CustomResourceDefinitions().Get(ctx, res.CRDName(), metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get CRD %s: %w", res.CRDName(), err)
	}
	return isEstablished(crd), nil
}

// WaitEstablished polls until the CRD backing res reports the Established
// condition, the context is done, or a non-NotFound API error occurs.
// NotFound is tolerated while polling so callers can start waiting before
// the CRD has been applied.
func WaitEstablished(ctx context.Context, client apiextensionsclient.Interface, res core.Resource) error {
	logger := core.Logger()
	startTime := time.Now()
	warned := false

	err := wait.PollUntilContextCancel(ctx, pollInterval, true, func(ctx context.Context) (bool, error) {
		crd, getErr := client.ApiextensionsV1().CustomResourceDefinitions().Get(ctx, res.CRDName(), metav1.GetOptions{})
		if apierrors.IsNotFound(getErr) {
			warned = warnIfSlow(ctx, logger, res, startTime, warned)
			return false, nil
		}
		if getErr != nil {
			return false, getErr
		}
		if isEstablished(crd) {
			return true, nil
		}
		warned = warnIfSlow(ctx, logger, res, startTime, warned)
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("waiting for CRD %s to be established: %w", res.CRDName(), err)
	}
	return nil
}

// warnIfSlow emits a single warning once the wait exceeds longWaitThreshold.
func warnIfSlow(ctx context.Context, logger *slog.Logger, res core.Resource, startTime time.Time, warned bool) bool {
	if warned || time.Since(startTime) < longWaitThreshold {
		return warned
	}
	logger.WarnContext(ctx, "CRD establishment is taking longer than expected",
		"crd", res.CRDName(),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)
	return true
}

// isEstablished checks the CRD's Established condition.
func isEstablished(crd *apiextensionsv1.CustomResourceDefinition) bool {
	for _, cond := range crd.Status.Conditions {
		if cond.Type == apiextensionsv1.Established && cond.Status == apiextensionsv1.ConditionTrue {
			return true
		}
	}
	return false
}
