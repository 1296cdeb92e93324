package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/treelist/internal/model"
)

func TestResolveExpansionImmediateParent(t *testing.T) {
	parent := model.NewDirItem("dir", "root/dir", 0)

	s := NewStore()
	s.Refresh([]*model.Item{parent})

	req, ok := s.ResolveExpansion("root/dir/file.txt", 0)
	require.True(t, ok)
	assert.Same(t, parent, req.Parent)
	assert.Equal(t, "root/dir/file.txt", req.TargetPath)
	assert.Equal(t, 1, req.RequiredDepth)
}

func TestResolveExpansionCountsSteps(t *testing.T) {
	ancestor := model.NewDirItem("root", "root", 0)

	s := NewStore()
	s.Refresh([]*model.Item{ancestor})

	req, ok := s.ResolveExpansion("root/a/b/c.txt", 0)
	require.True(t, ok)
	assert.Same(t, ancestor, req.Parent)
	assert.Equal(t, 3, req.RequiredDepth)
}

func TestResolveExpansionAlreadyExpanded(t *testing.T) {
	parent := model.NewDirItem("dir", "root/dir", 0)
	parent.Expanded = true

	s := NewStore()
	s.Refresh([]*model.Item{parent})

	_, ok := s.ResolveExpansion("root/dir/file.txt", 0)
	assert.False(t, ok, "an already-expanded ancestor needs no action")
}

func TestResolveExpansionNoAncestor(t *testing.T) {
	s := NewStore()
	s.Refresh([]*model.Item{model.NewDirItem("other", "elsewhere/other", 0)})

	_, ok := s.ResolveExpansion("root/a/b/c.txt", 0)
	assert.False(t, ok)
}

func TestResolveExpansionTerminatesOnRootPaths(t *testing.T) {
	s := NewStore()

	// Paths that are their own parent must terminate without a match
	for _, target := range []string{"/", ".", "lonely.txt", "/top.txt"} {
		_, ok := s.ResolveExpansion(target, 0)
		assert.False(t, ok, "target %q", target)
	}
}

func TestResolveExpansionRespectsSource(t *testing.T) {
	parent := model.NewDirItem("dir", "root/dir", 0)
	parent.SourceIndex = 2

	s := NewStore()
	s.Refresh([]*model.Item{parent})

	_, ok := s.ResolveExpansion("root/dir/file.txt", 0)
	assert.False(t, ok, "ancestor from another source must not match")

	req, ok := s.ResolveExpansion("root/dir/file.txt", 2)
	require.True(t, ok)
	assert.Same(t, parent, req.Parent)
}
