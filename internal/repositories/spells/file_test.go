package spells_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
	"github.com/chronicles-of-arvandor/spell-converter/internal/repositories/spells"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo spells.Repository
	ctx  context.Context
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.ctx = context.Background()

	repo, err := spells.NewFile(&spells.FileConfig{Dir: s.dir})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FileRepositoryTestSuite) TestNewFile() {
	notADir := filepath.Join(s.dir, "file.txt")
	s.Require().NoError(os.WriteFile(notADir, []byte("x"), 0o600))

	testCases := []struct {
		name    string
		config  *spells.FileConfig
		errCode errors.Code
	}{
		{name: "nil config", config: nil, errCode: errors.CodeInvalidArgument},
		{name: "empty dir", config: &spells.FileConfig{}, errCode: errors.CodeInvalidArgument},
		{name: "missing dir", config: &spells.FileConfig{Dir: filepath.Join(s.dir, "nope")}, errCode: errors.CodeNotFound},
		{name: "not a directory", config: &spells.FileConfig{Dir: notADir}, errCode: errors.CodeInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := spells.NewFile(tc.config)
			s.Require().Error(err)
			s.Nil(repo)
			s.Equal(tc.errCode, errors.GetCode(err))
		})
	}
}

func (s *FileRepositoryTestSuite) TestSaveAndGet() {
	doc := []byte("spell:\n  ==: Spell\n")

	out, err := s.repo.Save(s.ctx, spells.SaveInput{
		Spell:    &spell.Spell{ID: "1", Name: "Melf's Minute Meteors"},
		Document: doc,
	})
	s.Require().NoError(err)
	s.Equal("Melf_s_Minute_Meteors.yml", out.Key)
	s.Equal(filepath.Join(s.dir, "Melf_s_Minute_Meteors.yml"), out.Location)

	got, err := s.repo.Get(s.ctx, spells.GetInput{Key: out.Key})
	s.Require().NoError(err)
	s.Equal(doc, got.Document)
}

func (s *FileRepositoryTestSuite) TestSaveCollisionOverwrites() {
	_, err := s.repo.Save(s.ctx, spells.SaveInput{Spell: &spell.Spell{Name: "A/B"}, Document: []byte("first")})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, spells.SaveInput{Spell: &spell.Spell{Name: "A:B"}, Document: []byte("second")})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, spells.GetInput{Key: "A_B.yml"})
	s.Require().NoError(err)
	s.Equal("second", string(got.Document))
}

func (s *FileRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, spells.SaveInput{Document: []byte("x")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, spells.SaveInput{Spell: &spell.Spell{Name: "x"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestSaveCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.repo.Save(ctx, spells.SaveInput{Spell: &spell.Spell{Name: "x"}, Document: []byte("x")})
	s.True(errors.IsCanceled(err))
}

func (s *FileRepositoryTestSuite) TestGetErrors() {
	_, err := s.repo.Get(s.ctx, spells.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, spells.GetInput{Key: "Missing.yml"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, spells.GetInput{Key: "../escape.yml"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestList() {
	for _, name := range []string{"Fireball", "Acid Splash"} {
		_, err := s.repo.Save(s.ctx, spells.SaveInput{Spell: &spell.Spell{Name: name}, Document: []byte("x")})
		s.Require().NoError(err)
	}
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "notes.txt"), []byte("x"), 0o600))

	out, err := s.repo.List(s.ctx, spells.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Acid_Splash.yml", "Fireball.yml"}, out.Keys)
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}
