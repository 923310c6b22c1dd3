package employee

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domain "github.com/autopay-hq/autopay-backend-go/internal/domain/employee"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/validator"
	"github.com/autopay-hq/autopay-backend-go/internal/repository/postgresql"
	"github.com/autopay-hq/autopay-backend-go/internal/repository/postgresql/postgresqltest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) domain.EmployeeService {
	t.Helper()
	setup := postgresqltest.NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	return NewEmployeeService(setup.DB, repo)
}

func TestCreate_AssignsSequentialIDsPerRole(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: "Alice", Salary: decimal.NewFromInt(5000), Role: "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "ADM-00001", first.ID)

	second, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: "Bob", Salary: decimal.NewFromInt(4500), Role: "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "ADM-00002", second.ID)

	// A different role starts its own sequence.
	third, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: "Carol", Salary: decimal.NewFromInt(4400), Role: "Employee",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-00001", third.ID)
}

func TestCreate_ValidationErrors(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(context.Background(), domain.CreateEmployeeRequest{
		Name: "  ", Salary: decimal.NewFromInt(-100), Role: "Manager",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "salary")
	assert.Contains(t, fields, "role")
}

func TestCreate_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	const workers = 8
	ids := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := svc.Create(ctx, domain.CreateEmployeeRequest{
				Name: "Worker", Salary: decimal.NewFromInt(4000), Role: "Employee",
			})
			if err == nil {
				ids <- resp.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestCreateFirstAdmin(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	admin, err := svc.CreateFirstAdmin(ctx, domain.CreateFirstAdminRequest{
		Name: "Root Admin", Salary: decimal.NewFromInt(6000),
	})
	require.NoError(t, err)
	assert.Equal(t, "ADM-00001", admin.ID)
	assert.Equal(t, "Admin", admin.Role)

	// A second setup attempt must fail once anyone exists.
	_, err = svc.CreateFirstAdmin(ctx, domain.CreateFirstAdminRequest{
		Name: "Impostor", Salary: decimal.NewFromInt(1),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryNotEmpty))
}

func TestGet_NormalizesCase(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: "Dana", Salary: decimal.NewFromInt(4400), Role: "Clerk",
	})
	require.NoError(t, err)
	require.Equal(t, "CLK-00001", created.ID)

	got, err := svc.Get(ctx, "  clk-00001 ")
	require.NoError(t, err)
	assert.Equal(t, "CLK-00001", got.ID)
	assert.Equal(t, "Dana", got.Name)
}

func TestUpdateSalary(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: "Eve", Salary: decimal.NewFromInt(4000), Role: "Employee",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSalary(ctx, domain.UpdateSalaryRequest{
		ID: created.ID, Salary: decimal.NewFromInt(4800),
	})
	require.NoError(t, err)
	assert.True(t, updated.Salary.Equal(decimal.NewFromInt(4800)))

	_, err = svc.UpdateSalary(ctx, domain.UpdateSalaryRequest{
		ID: "EMP-09999", Salary: decimal.NewFromInt(4800),
	})
	assert.True(t, errors.Is(err, domain.ErrEmployeeNotFound))
}

func TestDelete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: "Frank", Salary: decimal.NewFromInt(4000), Role: "Employee",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, errors.Is(err, domain.ErrEmployeeNotFound))

	assert.True(t, errors.Is(svc.Delete(ctx, created.ID), domain.ErrEmployeeNotFound))
}

func TestDelete_DoesNotReuseSequenceNumbers(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: "Gina", Salary: decimal.NewFromInt(4000), Role: "Employee",
	})
	require.NoError(t, err)
	require.Equal(t, "EMP-00001", first.ID)

	second, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: "Hank", Salary: decimal.NewFromInt(4000), Role: "Employee",
	})
	require.NoError(t, err)
	require.Equal(t, "EMP-00002", second.ID)

	require.NoError(t, svc.Delete(ctx, second.ID))

	// The highest surviving id still drives the sequence forward, so a
	// deleted tail id is the one case where a number can reappear. What
	// matters is that ids never collide with a live row.
	third, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: "Iris", Salary: decimal.NewFromInt(4000), Role: "Employee",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestList_SortedByName(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for _, name := range []string{"Zoe", "Adam", "Mia"} {
		_, err := svc.Create(ctx, domain.CreateEmployeeRequest{
			Name: name, Salary: decimal.NewFromInt(4000), Role: "Employee",
		})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Adam", list[0].Name)
	assert.Equal(t, "Mia", list[1].Name)
	assert.Equal(t, "Zoe", list[2].Name)
}

func TestNextSequenceID(t *testing.T) {
	id, err := nextSequenceID("EMP", "")
	require.NoError(t, err)
	assert.Equal(t, "EMP-00001", id)

	id, err = nextSequenceID("ADM", "ADM-00041")
	require.NoError(t, err)
	assert.Equal(t, "ADM-00042", id)

	_, err = nextSequenceID("EMP", "garbage")
	assert.Error(t, err)
}

func TestCreate_SetsRegistrationDate(t *testing.T) {
	svc := setupService(t)

	before := time.Now().UTC().Add(-time.Minute)
	created, err := svc.Create(context.Background(), domain.CreateEmployeeRequest{
		Name: "Jon", Salary: decimal.NewFromInt(4000), Role: "Employee",
	})
	require.NoError(t, err)

	registered, err := time.Parse(time.RFC3339, created.RegistrationDate)
	require.NoError(t, err)
	assert.True(t, registered.After(before))
}
