package catalog_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
	mockclock "github.com/KirkDiggler/dragonwilds-editor/internal/pkg/clock/mock"
	"github.com/KirkDiggler/dragonwilds-editor/internal/repositories/catalog"
	"github.com/KirkDiggler/dragonwilds-editor/internal/testutils"
)

type RedisCatalogTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	repo      catalog.SharedRepository
	ctx       context.Context
}

func TestRedisCatalogSuite(t *testing.T) {
	suite.Run(t, new(RedisCatalogTestSuite))
}

func (s *RedisCatalogTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := catalog.NewRedis(&catalog.RedisConfig{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisCatalogTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisCatalogTestSuite) TestNewRedis() {
	client, _ := testutils.CreateTestRedisClient(s.T())

	testCases := []struct {
		name    string
		config  *catalog.RedisConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:   "success with valid config",
			config: &catalog.RedisConfig{Client: client},
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &catalog.RedisConfig{},
			wantErr: true,
			errMsg:  "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := catalog.NewRedis(tc.config)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
			} else {
				s.NoError(err)
				s.NotNil(repo)
			}
		})
	}
}

func (s *RedisCatalogTestSuite) TestStoreAndLoad() {
	s.mockClock.EXPECT().Now().Return(time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC))

	stored, err := s.repo.Store(s.ctx, catalog.StoreInput{
		Kind:    entities.CatalogRunes,
		Entries: testutils.RuneEntries(),
	})
	s.Require().NoError(err)
	s.Equal(2, stored.Entries)
	s.Equal("redis:catalog:runes", stored.Source)

	updatedAt, err := s.mr.Get(catalog.GetUpdatedAtKey(entities.CatalogRunes))
	s.Require().NoError(err)
	s.Equal("2026-10-14T09:30:00Z", updatedAt)

	output, err := s.repo.Load(s.ctx, catalog.LoadInput{Kind: entities.CatalogRunes})
	s.Require().NoError(err)
	s.Equal(testutils.RuneEntries(), output.Entries)
}

func (s *RedisCatalogTestSuite) TestLoad() {
	testCases := []struct {
		name     string
		setup    func()
		kind     entities.CatalogKind
		wantCode errors.Code
		validate func(output *catalog.LoadOutput)
	}{
		{
			name: "success",
			setup: func() {
				s.Require().NoError(s.mr.Set(catalog.GetKey(entities.CatalogItems), testutils.ItemsJSON))
				s.Require().NoError(s.mr.Set(catalog.GetUpdatedAtKey(entities.CatalogItems), "2026-10-14T09:30:00Z"))
			},
			kind: entities.CatalogItems,
			validate: func(output *catalog.LoadOutput) {
				s.Len(output.Entries, 3)
				s.Equal(map[string]any{"Tier": json.Number("2")}, output.Entries[1].ItemData)
				s.Equal(time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC), output.UpdatedAt.UTC())
			},
		},
		{
			name: "bad import time is ignored",
			setup: func() {
				s.Require().NoError(s.mr.Set(catalog.GetKey(entities.CatalogRunes), testutils.RunesJSON))
				s.Require().NoError(s.mr.Set(catalog.GetUpdatedAtKey(entities.CatalogRunes), "yesterday"))
			},
			kind: entities.CatalogRunes,
			validate: func(output *catalog.LoadOutput) {
				s.Len(output.Entries, 2)
				s.True(output.UpdatedAt.IsZero())
			},
		},
		{
			name:     "missing key",
			setup:    func() {},
			kind:     entities.CatalogRunes,
			wantCode: errors.CodeNotFound,
		},
		{
			name: "corrupt value",
			setup: func() {
				s.Require().NoError(s.mr.Set(catalog.GetKey(entities.CatalogRunes), "not json"))
			},
			kind:     entities.CatalogRunes,
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "unknown kind",
			setup:    func() {},
			kind:     "potions",
			wantCode: errors.CodeInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mr.FlushAll()
			tc.setup()

			output, err := s.repo.Load(s.ctx, catalog.LoadInput{Kind: tc.kind})

			if tc.wantCode != "" {
				s.Error(err)
				s.Equal(tc.wantCode, errors.GetCode(err))
				s.Nil(output)
			} else {
				s.NoError(err)
				tc.validate(output)
			}
		})
	}
}

func (s *RedisCatalogTestSuite) TestStoreRedisDown() {
	s.mockClock.EXPECT().Now().Return(time.Now())
	s.mr.Close()

	output, err := s.repo.Store(s.ctx, catalog.StoreInput{Kind: entities.CatalogItems})
	s.Error(err)
	s.Contains(err.Error(), "failed to store catalog")
	s.Nil(output)
}

func (s *RedisCatalogTestSuite) TestVerify() {
	s.Require().NoError(s.mr.Set(catalog.GetKey(entities.CatalogItems), testutils.ItemsJSON))
	s.Require().NoError(s.mr.Set(catalog.GetUpdatedAtKey(entities.CatalogItems), "2026-10-14T09:30:00Z"))
	s.Require().NoError(s.mr.Set(catalog.GetKey(entities.CatalogRunes), `[{"GUID": "g-air"}]`))
	s.Require().NoError(s.mr.Set("catalog:legacy", "{"))
	s.Require().NoError(s.mr.Set("character:1", "not a catalog"))

	output, err := s.repo.Verify(s.ctx, catalog.VerifyInput{})
	s.Require().NoError(err)
	s.Equal(3, output.Checked)
	s.Require().Len(output.Corrupted, 2)

	keys := []string{output.Corrupted[0].Key, output.Corrupted[1].Key}
	s.ElementsMatch([]string{"catalog:runes", "catalog:legacy"}, keys)
	for _, c := range output.Corrupted {
		s.NotEmpty(c.Reason)
	}
}

func (s *RedisCatalogTestSuite) TestVerifyEmpty() {
	output, err := s.repo.Verify(s.ctx, catalog.VerifyInput{})
	s.Require().NoError(err)
	s.Zero(output.Checked)
	s.Empty(output.Corrupted)
}

func (s *RedisCatalogTestSuite) TestDelete() {
	key := catalog.GetKey(entities.CatalogRunes)
	s.Require().NoError(s.mr.Set(key, testutils.RunesJSON))
	s.Require().NoError(s.mr.Set(catalog.GetUpdatedAtKey(entities.CatalogRunes), "2026-10-14T09:30:00Z"))

	output, err := s.repo.Delete(s.ctx, catalog.DeleteInput{Key: key})
	s.Require().NoError(err)
	s.Equal(int64(2), output.Deleted)
	s.False(s.mr.Exists(key))

	_, err = s.repo.Delete(s.ctx, catalog.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}
