package application

import (
	"strings"
	"testing"

	marketmocks "github.com/Lexv0lk/secondhand-market/gen/mocks/market"
	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileCase_GetProfile(t *testing.T) {
	t.Parallel()

	type deps struct {
		usersRepository  *marketmocks.MockUsersRepository
		ordersRepository *marketmocks.MockOrdersRepository
	}

	type testCase struct {
		name      string
		prepareFn func(t *testing.T, d *deps)

		expectedProfile domain.Profile
		expectedErr     error
	}

	tests := []testCase{
		{
			name: "collects user and orders",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().GetUser(gomock.Any(), 1).
					Return(domain.User{ID: 1, Balance: 20000}, nil)
				d.ordersRepository.EXPECT().FetchUserPurchases(gomock.Any(), 1).
					Return([]domain.Order{{ID: 11, BuyerID: 1, Amount: 80000}}, nil)
				d.ordersRepository.EXPECT().FetchUserSales(gomock.Any(), 1).
					Return([]domain.Order{}, nil)
			},
			expectedProfile: domain.Profile{
				User:      domain.User{ID: 1, Balance: 20000},
				Purchases: []domain.Order{{ID: 11, BuyerID: 1, Amount: 80000}},
				Sales:     []domain.Order{},
			},
		},
		{
			name: "missing user",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().GetUser(gomock.Any(), 1).
					Return(domain.User{}, domain.NewNotFoundError(domain.EntityUser, 1))
				d.ordersRepository.EXPECT().FetchUserPurchases(gomock.Any(), 1).
					Return(nil, nil).AnyTimes()
				d.ordersRepository.EXPECT().FetchUserSales(gomock.Any(), 1).
					Return(nil, nil).AnyTimes()
			},
			expectedErr: &domain.NotFoundError{},
		},
		{
			name: "orders query error",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().GetUser(gomock.Any(), 1).
					Return(domain.User{ID: 1}, nil).AnyTimes()
				d.ordersRepository.EXPECT().FetchUserPurchases(gomock.Any(), 1).
					Return(nil, assert.AnError)
				d.ordersRepository.EXPECT().FetchUserSales(gomock.Any(), 1).
					Return(nil, nil).AnyTimes()
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				usersRepository:  marketmocks.NewMockUsersRepository(ctrl),
				ordersRepository: marketmocks.NewMockOrdersRepository(ctrl),
			}
			tt.prepareFn(t, d)

			profileCase := NewProfileCase(d.usersRepository, d.ordersRepository)
			profile, err := profileCase.GetProfile(t.Context(), 1)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedProfile, profile)
		})
	}
}

func TestProfileCase_UpdateBio(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		bio  string

		prepareFn func(t *testing.T, usersRepository *marketmocks.MockUsersRepository)

		expectedUser domain.User
		expectedErr  error
	}

	tests := []testCase{
		{
			name: "bio is trimmed and stored",
			bio:  "  selling vintage cameras  ",
			prepareFn: func(t *testing.T, usersRepository *marketmocks.MockUsersRepository) {
				usersRepository.EXPECT().UpdateBio(gomock.Any(), 1, "selling vintage cameras").
					Return(domain.User{ID: 1, Bio: "selling vintage cameras"}, nil)
			},
			expectedUser: domain.User{ID: 1, Bio: "selling vintage cameras"},
		},
		{
			name: "empty bio clears it",
			bio:  "   ",
			prepareFn: func(t *testing.T, usersRepository *marketmocks.MockUsersRepository) {
				usersRepository.EXPECT().UpdateBio(gomock.Any(), 1, "").
					Return(domain.User{ID: 1}, nil)
			},
			expectedUser: domain.User{ID: 1},
		},
		{
			name:        "bio over the limit",
			bio:         strings.Repeat("가", domain.MaxBioLength+1),
			prepareFn:   func(t *testing.T, usersRepository *marketmocks.MockUsersRepository) {},
			expectedErr: &domain.InvalidOperationError{},
		},
		{
			name: "bio at the limit in multibyte runes",
			bio:  strings.Repeat("가", domain.MaxBioLength),
			prepareFn: func(t *testing.T, usersRepository *marketmocks.MockUsersRepository) {
				usersRepository.EXPECT().UpdateBio(gomock.Any(), 1, strings.Repeat("가", domain.MaxBioLength)).
					Return(domain.User{ID: 1}, nil)
			},
			expectedUser: domain.User{ID: 1},
		},
		{
			name: "missing user",
			bio:  "hello",
			prepareFn: func(t *testing.T, usersRepository *marketmocks.MockUsersRepository) {
				usersRepository.EXPECT().UpdateBio(gomock.Any(), 1, "hello").
					Return(domain.User{}, domain.NewNotFoundError(domain.EntityUser, 1))
			},
			expectedErr: &domain.NotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			usersRepository := marketmocks.NewMockUsersRepository(ctrl)
			tt.prepareFn(t, usersRepository)

			profileCase := NewProfileCase(usersRepository, marketmocks.NewMockOrdersRepository(ctrl))
			user, err := profileCase.UpdateBio(t.Context(), 1, tt.bio)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}
