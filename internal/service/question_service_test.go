package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
)

func TestCreateQuestion(t *testing.T) {
	t.Run("returns record with zero counts and group summary", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.createUser(t, "alice", "alice@corp.example.com")
		group := env.createGroup(t, alice.ID, "Eng")

		question, err := env.questions.CreateQuestion(alice.ID, dto.CreateQuestionRequest{Text: " How to deploy? ", GroupID: group.ID})
		require.NoError(t, err)

		assert.Equal(t, "How to deploy?", question.Text)
		assert.Equal(t, group.ID, question.GroupID)
		assert.Equal(t, "Eng", question.Group.Name)
		assert.Equal(t, "alice", question.User.Name)
		assert.Equal(t, int64(0), question.Count.Likes)
		assert.Equal(t, int64(0), question.Count.Answers)
	})

	t.Run("rejects empty text and missing group", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.createUser(t, "alice", "alice@corp.example.com")
		group := env.createGroup(t, alice.ID, "Eng")

		var verr *ValidationError
		_, err := env.questions.CreateQuestion(alice.ID, dto.CreateQuestionRequest{Text: "  ", GroupID: group.ID})
		assert.ErrorAs(t, err, &verr)

		_, err = env.questions.CreateQuestion(alice.ID, dto.CreateQuestionRequest{Text: "hello"})
		assert.ErrorAs(t, err, &verr)
	})
}

func TestListQuestionsSearch(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "Alice Nguyen", "alice@corp.example.com")
	bob := env.createUser(t, "Bob Tran", "bob@corp.example.com")
	group := env.createGroup(t, bob.ID, "Eng")

	byAuthor := env.createQuestion(t, alice.ID, group.ID, "Where is the VPN config?")
	byAnswer := env.createQuestion(t, bob.ID, group.ID, "How do I rotate credentials?")
	noMatch := env.createQuestion(t, bob.ID, group.ID, "What is the deploy cadence?")
	inText := env.createQuestion(t, bob.ID, group.ID, "Can alice's team review this?")

	// Only matching content on byAnswer is an answer authored by Alice.
	env.createAnswer(t, alice.ID, byAnswer.ID, "Use the vault rotation job")
	// An answer on noMatch from Bob keeps it out of the result set.
	env.createAnswer(t, bob.ID, noMatch.ID, "Weekly on Tuesdays")

	results, err := env.questions.ListQuestions(nil, "alice", "recent")
	require.NoError(t, err)

	ids := make(map[uint]bool, len(results))
	for _, q := range results {
		ids[q.ID] = true
	}
	assert.True(t, ids[byAuthor.ID], "question authored by alice should match")
	assert.True(t, ids[byAnswer.ID], "question whose only match is an answer author should match")
	assert.True(t, ids[inText.ID], "question mentioning alice in its text should match")
	assert.False(t, ids[noMatch.ID], "question with no textual or author match should be excluded")
}

func TestListQuestionsSearchMatchesAnswerText(t *testing.T) {
	env := newTestEnv(t)
	bob := env.createUser(t, "Bob Tran", "bob@corp.example.com")
	group := env.createGroup(t, bob.ID, "Eng")

	question := env.createQuestion(t, bob.ID, group.ID, "How do I get prod access?")
	env.createAnswer(t, bob.ID, question.ID, "File a Kerberos ticket first")

	results, err := env.questions.ListQuestions(nil, "KERBEROS", "recent")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, question.ID, results[0].ID)
}

func TestListQuestionsUnanswered(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@corp.example.com")
	eng := env.createGroup(t, alice.ID, "Eng")
	sales := env.createGroup(t, alice.ID, "Sales")

	answered := env.createQuestion(t, alice.ID, eng.ID, "Answered one")
	open := env.createQuestion(t, alice.ID, eng.ID, "Open one")
	otherGroup := env.createQuestion(t, alice.ID, sales.ID, "Open but elsewhere")
	env.createAnswer(t, alice.ID, answered.ID, "Here you go")

	results, err := env.questions.ListQuestions(&eng.ID, "", "unanswered")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, open.ID, results[0].ID)
	assert.NotEqual(t, otherGroup.ID, results[0].ID)
}

func TestListQuestionsPopularSort(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@corp.example.com")
	bob := env.createUser(t, "bob", "bob@corp.example.com")
	carol := env.createUser(t, "carol", "carol@corp.example.com")
	group := env.createGroup(t, alice.ID, "Eng")

	cold := env.createQuestion(t, alice.ID, group.ID, "Nobody likes this")
	warm := env.createQuestion(t, alice.ID, group.ID, "One like")
	hot := env.createQuestion(t, alice.ID, group.ID, "Everyone likes this")

	for _, userID := range []uint{alice.ID, bob.ID, carol.ID} {
		_, err := env.likes.ToggleLike(model.LikeTypeQuestion, hot.ID, userID)
		require.NoError(t, err)
	}
	_, err := env.likes.ToggleLike(model.LikeTypeQuestion, warm.ID, bob.ID)
	require.NoError(t, err)

	results, err := env.questions.ListQuestions(nil, "", "popular")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, hot.ID, results[0].ID)
	assert.Equal(t, int64(3), results[0].Count.Likes)
	assert.Equal(t, warm.ID, results[1].ID)
	assert.Equal(t, cold.ID, results[2].ID)
}

func TestGetQuestion(t *testing.T) {
	t.Run("returns answers newest-first with their like counts", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.createUser(t, "alice", "alice@corp.example.com")
		bob := env.createUser(t, "bob", "bob@corp.example.com")
		group := env.createGroup(t, alice.ID, "Eng")
		question := env.createQuestion(t, alice.ID, group.ID, "How to deploy?")

		// Explicit timestamps keep the expected order unambiguous.
		old := "older answer"
		recent := "newer answer"
		now := time.Now()
		require.NoError(t, env.db.Create(&model.Answer{
			Text: &old, QuestionID: question.ID, CreatedBy: bob.ID, CreatedAt: now.Add(-time.Hour),
		}).Error)
		require.NoError(t, env.db.Create(&model.Answer{
			Text: &recent, QuestionID: question.ID, CreatedBy: bob.ID, CreatedAt: now,
		}).Error)

		detail, err := env.questions.GetQuestion(question.ID)
		require.NoError(t, err)
		require.Len(t, detail.Answers, 2)
		assert.Equal(t, &recent, detail.Answers[0].Text)
		assert.Equal(t, &old, detail.Answers[1].Text)
		assert.Equal(t, int64(2), detail.Count.Answers)

		_, err = env.likes.ToggleLike(model.LikeTypeAnswer, detail.Answers[0].ID, alice.ID)
		require.NoError(t, err)

		detail, err = env.questions.GetQuestion(question.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), detail.Answers[0].Count.Likes)
		assert.Equal(t, int64(0), detail.Answers[1].Count.Likes)
	})

	t.Run("missing question is ErrNotFound", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.questions.GetQuestion(777)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateQuestionOwnership(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@corp.example.com")
	bob := env.createUser(t, "bob", "bob@corp.example.com")
	group := env.createGroup(t, alice.ID, "Eng")
	question := env.createQuestion(t, alice.ID, group.ID, "Original text")

	_, errForeign := env.questions.UpdateQuestion(bob.ID, dto.UpdateQuestionRequest{ID: question.ID, Text: "Hijacked"})
	_, errMissing := env.questions.UpdateQuestion(bob.ID, dto.UpdateQuestionRequest{ID: 5555, Text: "Ghost"})
	assert.ErrorIs(t, errForeign, ErrNotFound)
	assert.ErrorIs(t, errMissing, ErrNotFound)

	updated, err := env.questions.UpdateQuestion(alice.ID, dto.UpdateQuestionRequest{ID: question.ID, Text: "Edited text"})
	require.NoError(t, err)
	assert.Equal(t, "Edited text", updated.Text)
}

func TestDeleteQuestionCascades(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@corp.example.com")
	group := env.createGroup(t, alice.ID, "Eng")
	question := env.createQuestion(t, alice.ID, group.ID, "Doomed")
	answer := env.createAnswer(t, alice.ID, question.ID, "Also doomed")

	_, err := env.likes.ToggleLike(model.LikeTypeQuestion, question.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.likes.ToggleLike(model.LikeTypeAnswer, answer.ID, alice.ID)
	require.NoError(t, err)

	require.NoError(t, env.questions.DeleteQuestion(alice.ID, question.ID))

	_, err = env.questions.GetQuestion(question.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var answers, likes int64
	require.NoError(t, env.db.Model(&model.Answer{}).Count(&answers).Error)
	require.NoError(t, env.db.Model(&model.Like{}).Count(&likes).Error)
	assert.Zero(t, answers)
	assert.Zero(t, likes)
}
