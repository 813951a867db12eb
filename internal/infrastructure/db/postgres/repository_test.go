package postgres

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-service/internal/domain"
	"task-service/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test, named after the test so
	// parallel packages never collide.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func mustValidatedUser(t *testing.T, username, password string) *entities.ValidatedUser {
	t.Helper()
	validated, err := entities.NewValidatedUser(entities.NewUser(username, password))
	require.NoError(t, err)
	return validated
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.Create(mustValidatedUser(t, "alice", "secret"))
	require.NoError(t, err)

	_, err = repo.Create(mustValidatedUser(t, "alice", "other"))
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestUserRepositoryFindByUsernameAbsent(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.FindByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryHashesPassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	created, err := repo.Create(mustValidatedUser(t, "alice", "secret"))
	require.NoError(t, err)

	assert.NotEqual(t, "secret", created.Password)
	assert.NoError(t, created.CheckPassword("secret"))
	assert.Error(t, created.CheckPassword("wrong"))
}

func seedTask(t *testing.T, repo *TaskRepository, userId uuid.UUID, title string, createdAt time.Time) *entities.Task {
	t.Helper()
	task := entities.NewTask(userId, title, "")
	task.CreatedAt = createdAt
	task.UpdatedAt = createdAt
	validated, err := entities.NewValidatedTask(task)
	require.NoError(t, err)
	created, err := repo.Create(validated)
	require.NoError(t, err)
	return created
}

func TestTaskRepositoryFindByOwnerNewestFirst(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t)).(*TaskRepository)
	owner := uuid.New()

	base := time.Now().Add(-time.Hour)
	seedTask(t, repo, owner, "first", base)
	seedTask(t, repo, owner, "second", base.Add(time.Minute))
	seedTask(t, repo, owner, "third", base.Add(2*time.Minute))

	tasks, err := repo.FindByOwner(owner)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestTaskRepositoryOwnerScoping(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t)).(*TaskRepository)
	owner := uuid.New()
	stranger := uuid.New()

	task := seedTask(t, repo, owner, "mine", time.Now())

	found, err := repo.FindOwned(stranger, task.Id)
	require.NoError(t, err)
	assert.Nil(t, found)

	updated, err := repo.Update(stranger, task.Id, "stolen", "")
	require.NoError(t, err)
	assert.Nil(t, updated)

	toggled, err := repo.ToggleComplete(stranger, task.Id)
	require.NoError(t, err)
	assert.Nil(t, toggled)

	deleted, err := repo.Delete(stranger, task.Id)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Still intact for the real owner.
	found, err = repo.FindOwned(owner, task.Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "mine", found.Title)
	assert.False(t, found.Completed)
}

func TestTaskRepositoryToggleComplete(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t)).(*TaskRepository)
	owner := uuid.New()
	task := seedTask(t, repo, owner, "flip me", time.Now())

	toggled, err := repo.ToggleComplete(owner, task.Id)
	require.NoError(t, err)
	require.NotNil(t, toggled)
	assert.True(t, toggled.Completed)

	toggled, err = repo.ToggleComplete(owner, task.Id)
	require.NoError(t, err)
	require.NotNil(t, toggled)
	assert.False(t, toggled.Completed)
}

func TestTaskRepositoryConcurrentToggles(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Serialize at the pool so sqlite never reports a busy table; the
	// toggles themselves still interleave freely across goroutines.
	sqlDB.SetMaxOpenConns(1)

	repo := NewTaskRepository(db).(*TaskRepository)
	owner := uuid.New()
	task := seedTask(t, repo, owner, "contended", time.Now())

	const workers = 5
	const togglesPerWorker = 5

	var wg sync.WaitGroup
	errs := make(chan error, workers*togglesPerWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < togglesPerWorker; j++ {
				if _, toggleErr := repo.ToggleComplete(owner, task.Id); toggleErr != nil {
					errs <- toggleErr
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for toggleErr := range errs {
		require.NoError(t, toggleErr)
	}

	final, err := repo.FindOwned(owner, task.Id)
	require.NoError(t, err)
	require.NotNil(t, final)
	// 25 toggles from false: if every flip lands exactly once the flag
	// ends up true; any lost update leaves it false.
	assert.True(t, final.Completed)
}

func TestTaskRepositoryToggleUnknownTask(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t)).(*TaskRepository)

	toggled, err := repo.ToggleComplete(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, toggled)
}

func TestTokenRepositoryOneTokenPerUser(t *testing.T) {
	repo := NewTokenRepository(newTestDB(t))
	owner := uuid.New()

	require.NoError(t, repo.Create(entities.NewToken("aaaa", owner)))

	err := repo.Create(entities.NewToken("bbbb", owner))
	assert.ErrorIs(t, err, domain.ErrDuplicateToken)
}

func TestTokenRepositoryFindByValueAbsent(t *testing.T) {
	repo := NewTokenRepository(newTestDB(t))

	token, err := repo.FindByValue("missing")
	require.NoError(t, err)
	assert.Nil(t, token)
}
