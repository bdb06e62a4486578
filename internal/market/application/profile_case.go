package application

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"golang.org/x/sync/errgroup"
)

type ProfileCase struct {
	usersRepository  domain.UsersRepository
	ordersRepository domain.OrdersRepository
}

func NewProfileCase(usersRepository domain.UsersRepository, ordersRepository domain.OrdersRepository) *ProfileCase {
	return &ProfileCase{
		usersRepository:  usersRepository,
		ordersRepository: ordersRepository,
	}
}

func (pc *ProfileCase) GetProfile(ctx context.Context, userID int) (domain.Profile, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var user domain.User
	var purchases, sales []domain.Order

	group.Go(func() error {
		var err error
		user, err = pc.usersRepository.GetUser(groupCtx, userID)
		return err
	})

	group.Go(func() error {
		var err error
		purchases, err = pc.ordersRepository.FetchUserPurchases(groupCtx, userID)
		return err
	})

	group.Go(func() error {
		var err error
		sales, err = pc.ordersRepository.FetchUserSales(groupCtx, userID)
		return err
	})

	err := group.Wait()
	if err != nil {
		return domain.Profile{}, err
	}

	return domain.Profile{
		User:      user,
		Purchases: purchases,
		Sales:     sales,
	}, nil
}

func (pc *ProfileCase) UpdateBio(ctx context.Context, userID int, bio string) (domain.User, error) {
	bio = strings.TrimSpace(bio)

	if utf8.RuneCountInString(bio) > domain.MaxBioLength {
		return domain.User{}, &domain.InvalidOperationError{
			Reason: domain.ReasonInvalidProfile,
			Msg:    fmt.Sprintf("bio must be at most %d characters", domain.MaxBioLength),
		}
	}

	return pc.usersRepository.UpdateBio(ctx, userID, bio)
}
