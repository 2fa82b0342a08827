package service

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
)

// testEnv wires the real repositories and services over a throwaway SQLite
// database, so tests exercise the actual SQL the services emit.
type testEnv struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	likeRepo  repository.LikeRepository
	groups    GroupService
	questions QuestionService
	answers   AnswerService
	likes     LikeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "quokka_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Question{},
		&model.Answer{},
		&model.Like{},
	))

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	return &testEnv{
		db:        db,
		userRepo:  userRepo,
		likeRepo:  likeRepo,
		groups:    NewGroupService(groupRepo, questionRepo),
		questions: NewQuestionService(questionRepo, answerRepo, likeRepo),
		answers:   NewAnswerService(answerRepo),
		likes:     NewLikeService(likeRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createGroup(t *testing.T, userID uint, name string) *dto.GroupResponse {
	t.Helper()
	group, err := e.groups.CreateGroup(userID, dto.CreateGroupRequest{Name: name})
	require.NoError(t, err)
	return group
}

func (e *testEnv) createQuestion(t *testing.T, userID, groupID uint, text string) *dto.QuestionResponse {
	t.Helper()
	question, err := e.questions.CreateQuestion(userID, dto.CreateQuestionRequest{Text: text, GroupID: groupID})
	require.NoError(t, err)
	return question
}

func (e *testEnv) createAnswer(t *testing.T, userID, questionID uint, text string) *dto.AnswerResponse {
	t.Helper()
	answer, err := e.answers.CreateAnswer(userID, dto.CreateAnswerRequest{Text: text, QuestionID: questionID})
	require.NoError(t, err)
	return answer
}
