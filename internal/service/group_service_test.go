package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
)

func TestCreateGroup(t *testing.T) {
	t.Run("creates group with creator summary and zero question count", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.createUser(t, "alice", "alice@corp.example.com")

		group, err := env.groups.CreateGroup(alice.ID, dto.CreateGroupRequest{Name: "  Eng  ", Description: "Engineering"})
		require.NoError(t, err)

		assert.Equal(t, "Eng", group.Name)
		assert.Equal(t, "Engineering", group.Description)
		assert.Equal(t, alice.ID, group.CreatedBy)
		assert.Equal(t, "alice", group.User.Name)
		assert.Equal(t, int64(0), group.Count.Questions)
	})

	t.Run("rejects whitespace-only name before touching the store", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.createUser(t, "alice", "alice@corp.example.com")

		_, err := env.groups.CreateGroup(alice.ID, dto.CreateGroupRequest{Name: "   "})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Group name is required", verr.Message)

		var count int64
		require.NoError(t, env.db.Model(&model.Group{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestListGroups(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@corp.example.com")
	bob := env.createUser(t, "bob", "bob@corp.example.com")

	eng := env.createGroup(t, alice.ID, "Eng")
	sales := env.createGroup(t, bob.ID, "Sales")
	env.createQuestion(t, alice.ID, eng.ID, "How to deploy?")
	env.createQuestion(t, bob.ID, eng.ID, "Where are the runbooks?")

	groups, err := env.groups.ListGroups()
	require.NoError(t, err)
	require.Len(t, groups, 2)

	byID := map[uint]dto.GroupResponse{}
	for _, g := range groups {
		byID[g.ID] = g
	}
	assert.Equal(t, int64(2), byID[eng.ID].Count.Questions)
	assert.Equal(t, int64(0), byID[sales.ID].Count.Questions)
	assert.Equal(t, "alice", byID[eng.ID].User.Name)
}

func TestUpdateGroup(t *testing.T) {
	t.Run("owner can update", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.createUser(t, "alice", "alice@corp.example.com")
		group := env.createGroup(t, alice.ID, "Eng")

		updated, err := env.groups.UpdateGroup(alice.ID, dto.UpdateGroupRequest{ID: group.ID, Name: "Engineering", Description: "renamed"})
		require.NoError(t, err)
		assert.Equal(t, "Engineering", updated.Name)
		assert.Equal(t, "renamed", updated.Description)
	})

	t.Run("non-owner gets the same error as a missing id", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.createUser(t, "alice", "alice@corp.example.com")
		bob := env.createUser(t, "bob", "bob@corp.example.com")
		group := env.createGroup(t, alice.ID, "Eng")

		_, errForeign := env.groups.UpdateGroup(bob.ID, dto.UpdateGroupRequest{ID: group.ID, Name: "Hijacked"})
		_, errMissing := env.groups.UpdateGroup(bob.ID, dto.UpdateGroupRequest{ID: 9999, Name: "Ghost"})

		assert.ErrorIs(t, errForeign, ErrNotFound)
		assert.ErrorIs(t, errMissing, ErrNotFound)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.createUser(t, "alice", "alice@corp.example.com")
		group := env.createGroup(t, alice.ID, "Eng")

		_, err := env.groups.UpdateGroup(alice.ID, dto.UpdateGroupRequest{ID: group.ID, Name: " "})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestDeleteGroup(t *testing.T) {
	t.Run("cascades to questions, answers and likes", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.createUser(t, "alice", "alice@corp.example.com")
		group := env.createGroup(t, alice.ID, "Eng")
		question := env.createQuestion(t, alice.ID, group.ID, "How to deploy?")
		answer := env.createAnswer(t, alice.ID, question.ID, "Use the pipeline")

		_, err := env.likes.ToggleLike(model.LikeTypeQuestion, question.ID, alice.ID)
		require.NoError(t, err)
		_, err = env.likes.ToggleLike(model.LikeTypeAnswer, answer.ID, alice.ID)
		require.NoError(t, err)

		require.NoError(t, env.groups.DeleteGroup(alice.ID, group.ID))

		var questions, answers, likes int64
		require.NoError(t, env.db.Model(&model.Question{}).Count(&questions).Error)
		require.NoError(t, env.db.Model(&model.Answer{}).Count(&answers).Error)
		require.NoError(t, env.db.Model(&model.Like{}).Count(&likes).Error)
		assert.Zero(t, questions)
		assert.Zero(t, answers)
		assert.Zero(t, likes)
	})

	t.Run("non-owner delete is indistinguishable from missing", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.createUser(t, "alice", "alice@corp.example.com")
		bob := env.createUser(t, "bob", "bob@corp.example.com")
		group := env.createGroup(t, alice.ID, "Eng")

		assert.ErrorIs(t, env.groups.DeleteGroup(bob.ID, group.ID), ErrNotFound)
		assert.ErrorIs(t, env.groups.DeleteGroup(bob.ID, 4242), ErrNotFound)

		// The group survives the failed attempts.
		groups, err := env.groups.ListGroups()
		require.NoError(t, err)
		assert.Len(t, groups, 1)
	})
}
