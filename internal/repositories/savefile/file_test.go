package savefile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
	"github.com/KirkDiggler/dragonwilds-editor/internal/repositories/savefile"
	"github.com/KirkDiggler/dragonwilds-editor/internal/testutils"
)

type FileSaveTestSuite struct {
	suite.Suite
	repo savefile.Repository
	ctx  context.Context
}

func TestFileSaveSuite(t *testing.T) {
	suite.Run(t, new(FileSaveTestSuite))
}

func (s *FileSaveTestSuite) SetupTest() {
	s.repo = savefile.NewFile(nil)
	s.ctx = context.Background()
}

func (s *FileSaveTestSuite) TestLoad() {
	path := testutils.WriteFile(s.T(), "character.json", testutils.SaveJSON)

	output, err := s.repo.Load(s.ctx, savefile.LoadInput{Path: path})
	s.Require().NoError(err)
	s.Equal(path, output.Path)
	s.Equal(testutils.TestCharacterName, output.Document.CharacterName())
	s.Len(output.Document.Skills(), 4)
}

func (s *FileSaveTestSuite) TestLoadFailures() {
	dir := s.T().TempDir()

	testCases := []struct {
		name     string
		path     string
		wantCode errors.Code
	}{
		{
			name:     "empty path",
			path:     "",
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "missing file",
			path:     filepath.Join(dir, "nope.json"),
			wantCode: errors.CodeNotFound,
		},
		{
			name:     "malformed json",
			path:     testutils.WriteFile(s.T(), "bad.json", `{"Skills": `),
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "directory",
			path:     dir,
			wantCode: errors.CodeInternal,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.repo.Load(s.ctx, savefile.LoadInput{Path: tc.path})
			s.Nil(output)
			s.Require().Error(err)
			s.Equal(tc.wantCode, errors.GetCode(err))
		})
	}
}

func (s *FileSaveTestSuite) TestSaveRoundTrip() {
	path := testutils.WriteFile(s.T(), "character.json", testutils.SaveJSON)

	loaded, err := s.repo.Load(s.ctx, savefile.LoadInput{Path: path})
	s.Require().NoError(err)

	saved, err := s.repo.Save(s.ctx, savefile.SaveInput{Path: path, Document: loaded.Document})
	s.Require().NoError(err)
	s.Positive(saved.BytesWritten)

	raw, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Len(raw, saved.BytesWritten)

	var original, rewritten map[string]any
	s.Require().NoError(json.Unmarshal([]byte(testutils.SaveJSON), &original))
	s.Require().NoError(json.Unmarshal(raw, &rewritten))
	s.Equal(original, rewritten)

	skills := rewritten["Skills"].(map[string]any)["Skills"].([]any)
	s.Equal("4pefO9kAAAA", skills[0].(map[string]any)["Id"])
	s.Equal("jqX0Gh6-mine", skills[3].(map[string]any)["Id"])
}

func (s *FileSaveTestSuite) TestSaveWritesEdits() {
	path := testutils.WriteFile(s.T(), "character.json", testutils.SaveJSON)
	loaded, err := s.repo.Load(s.ctx, savefile.LoadInput{Path: path})
	s.Require().NoError(err)

	s.Require().NoError(loaded.Document.SetSkillXP(1, entities.Level50XP))
	loaded.Document.DeleteInventoryEntry(9)

	_, err = s.repo.Save(s.ctx, savefile.SaveInput{Path: path, Document: loaded.Document})
	s.Require().NoError(err)

	again, err := s.repo.Load(s.ctx, savefile.LoadInput{Path: path})
	s.Require().NoError(err)
	xp, err := again.Document.SkillXP(1)
	s.Require().NoError(err)
	s.Equal(entities.Level50XP, xp)
	s.Equal([]int{0, 32}, again.Document.InventorySlots())
}

func (s *FileSaveTestSuite) TestSaveFailures() {
	doc := testutils.TestDocument(s.T())

	testCases := []struct {
		name     string
		input    savefile.SaveInput
		wantCode errors.Code
	}{
		{
			name:     "empty path",
			input:    savefile.SaveInput{Document: doc},
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "nil document",
			input:    savefile.SaveInput{Path: "x.json"},
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name: "directory gone",
			input: savefile.SaveInput{
				Path:     filepath.Join(s.T().TempDir(), "gone", "character.json"),
				Document: doc,
			},
			wantCode: errors.CodeNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.repo.Save(s.ctx, tc.input)
			s.Nil(output)
			s.Require().Error(err)
			s.Equal(tc.wantCode, errors.GetCode(err))
		})
	}
}

func (s *FileSaveTestSuite) TestList() {
	dir := s.T().TempDir()
	for _, name := range []string{"b.json", "a.JSON", "notes.txt"} {
		s.Require().NoError(os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600))
	}
	s.Require().NoError(os.Mkdir(filepath.Join(dir, "backup.json"), 0o700))

	output, err := s.repo.List(s.ctx, savefile.ListInput{Dir: dir})
	s.Require().NoError(err)
	s.Equal([]string{filepath.Join(dir, "a.JSON"), filepath.Join(dir, "b.json")}, output.Paths)

	missing := filepath.Join(dir, "missing")
	_, err = s.repo.List(s.ctx, savefile.ListInput{Dir: missing})
	s.True(errors.IsNotFound(err))
	s.Equal("failed to list save directory: "+missing+" not found", errors.GetMessage(err))
	s.Equal(missing, errors.GetMeta(err)["path"])

	_, err = s.repo.List(s.ctx, savefile.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileSaveTestSuite) TestFilesystemErrorsNameThePath() {
	dir := s.T().TempDir()
	missing := filepath.Join(dir, "nope.json")
	gone := filepath.Join(dir, "gone", "character.json")

	testCases := []struct {
		name    string
		call    func() error
		path    string
		wantMsg string
	}{
		{
			name: "load missing file",
			call: func() error {
				_, err := s.repo.Load(s.ctx, savefile.LoadInput{Path: missing})
				return err
			},
			path:    missing,
			wantMsg: "failed to read save file: " + missing + " not found",
		},
		{
			name: "save into missing directory",
			call: func() error {
				_, err := s.repo.Save(s.ctx, savefile.SaveInput{Path: gone, Document: testutils.TestDocument(s.T())})
				return err
			},
			path:    gone,
			wantMsg: "failed to write save file: " + gone + " not found",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.True(errors.IsNotFound(err))
			s.Equal(tc.wantMsg, errors.GetMessage(err))
			s.Equal(tc.path, errors.GetMeta(err)["path"])
			s.Contains(errors.UserMessage(err), tc.path)
		})
	}
}
