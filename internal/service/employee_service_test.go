package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/images"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/store"
)

func seedEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "E001", Name: "Aarav Sharma", Department: "Engineering", Location: "Gurgaon", Email: "aarav@example.com", ProfileImage: domain.DefaultProfileImage},
		{ID: "E002", Name: "Priya Patel", Department: "Finance", Location: "Mumbai", Email: "priya@example.com", ProfileImage: domain.DefaultProfileImage},
		{ID: "E003", Name: "Rohan Gupta", Department: "Engineering", Location: "Mumbai", Email: "rohan@example.com", ProfileImage: domain.DefaultProfileImage},
	}
}

func newTestEmployeeService(t *testing.T, seed []domain.Employee) (*EmployeeService, repository.EmployeesRepository) {
	t.Helper()
	repo := repository.NewMemoryEmployeesRepo(seed)
	resolver := images.NewResolver(store.NewMemoryKV(), zap.NewNop())
	return NewEmployeeService(repo, resolver, "", zap.NewNop()), repo
}

func TestEmployeeServiceListOverlaysOverrides(t *testing.T) {
	svc, _ := newTestEmployeeService(t, seedEmployees())
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, "E002", pngPixel(t), "image/png")
	require.NoError(t, err)

	list, err := svc.List(ctx, repository.EmployeeFilters{})
	require.NoError(t, err)
	require.Len(t, list, 3)

	// upstream order preserved, only the overridden record changes
	assert.Equal(t, "E001", list[0].ID)
	assert.Equal(t, domain.DefaultProfileImage, list[0].ProfileImage)
	assert.Equal(t, images.Ref("E002"), list[1].ProfileImage)
	assert.Equal(t, domain.DefaultProfileImage, list[2].ProfileImage)
}

func TestEmployeeServiceUpdateImageReadAfterWrite(t *testing.T) {
	svc, _ := newTestEmployeeService(t, seedEmployees())
	ctx := context.Background()

	updated, err := svc.UpdateImage(ctx, "E001", dataURIPixel(t))
	require.NoError(t, err)
	assert.Equal(t, images.Ref("E001"), updated.ProfileImage)

	list, err := svc.List(ctx, repository.EmployeeFilters{Search: "aarav"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, images.Ref("E001"), list[0].ProfileImage)
}

func TestEmployeeServiceUpdateImagePlainReferenceSkipsLocalStore(t *testing.T) {
	svc, _ := newTestEmployeeService(t, seedEmployees())
	ctx := context.Background()

	updated, err := svc.UpdateImage(ctx, "E001", "https://cdn.example.com/avatars/e001.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/e001.png", updated.ProfileImage)

	drifts, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Empty(t, drifts, "plain references must not create a local override")
}

func TestEmployeeServiceUploadForUnknownEmployee(t *testing.T) {
	svc, _ := newTestEmployeeService(t, seedEmployees())
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, "E999", pngPixel(t), "image/png")
	require.Error(t, err)

	var syncErr *domain.UpstreamSyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, "E999", syncErr.EmployeeID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// the local override survives the failed propagation
	drifts, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, "E999", drifts[0].EmployeeID)
}

func TestEmployeeServiceReconcileReportsDrift(t *testing.T) {
	svc, repo := newTestEmployeeService(t, seedEmployees())
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, "E001", pngPixel(t), "image/png")
	require.NoError(t, err)

	// no drift right after a successful propagation
	drifts, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Empty(t, drifts)

	// upstream moves under us
	_, err = repo.UpdateImage(ctx, "E001", "https://hr.example.com/new.png")
	require.NoError(t, err)

	drifts, err = svc.Reconcile(ctx)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, "E001", drifts[0].EmployeeID)
	assert.Equal(t, images.Ref("E001"), drifts[0].Override)
	assert.Equal(t, "https://hr.example.com/new.png", drifts[0].Upstream)
}

func TestEmployeeServiceConcurrentUploadsSameID(t *testing.T) {
	svc, _ := newTestEmployeeService(t, seedEmployees())
	ctx := context.Background()
	img := pngPixel(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.UploadImage(ctx, "E001", img, "image/png")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := svc.List(ctx, repository.EmployeeFilters{Search: "E001"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, images.Ref("E001"), got[0].ProfileImage)
}

func TestEmployeeServiceNewJoinees(t *testing.T) {
	now := time.Now()
	recent := now.AddDate(0, 0, -5).Format("2006-01-02")
	recenter := now.AddDate(0, 0, -1).Format("2006-01-02")
	old := now.AddDate(0, -3, 0).Format("2006-01-02")

	seed := []domain.Employee{
		{ID: "E001", Name: "Old Timer", DateOfJoining: old},
		{ID: "E002", Name: "Last Week", DateOfJoining: recent},
		{ID: "E003", Name: "Yesterday", DateOfJoining: recenter},
		{ID: "E004", Name: "No Date"},
	}
	svc, _ := newTestEmployeeService(t, seed)

	joinees, err := svc.NewJoinees(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, joinees, 2)
	assert.Equal(t, "E003", joinees[0].ID, "newest joinee first")
	assert.Equal(t, "E002", joinees[1].ID)

	capped, err := svc.NewJoinees(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, "E003", capped[0].ID)
}

func TestEmployeeServiceStats(t *testing.T) {
	svc, _ := newTestEmployeeService(t, seedEmployees())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Employees)
	assert.Equal(t, 2, stats.Departments)
	assert.Equal(t, 2, stats.Locations)
}
