package commands

import (
	"context"
	"errors"

	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

// RateFoodMaxAttempts bounds how often a rating is retried after losing a
// race on the food's version.
const RateFoodMaxAttempts = 3

// RateFoodCommandHandler updates the running average of a food.
//
// The rating row and the food's average are written in one transaction, and
// the food update is conditioned on the version that was read. A concurrent
// rater of the same food makes the update match nothing; the whole
// read-modify-write is then retried in a fresh transaction.
type RateFoodCommandHandler struct {
	uowFactory FoodUoWFactory
}

func NewRateFoodCommandHandler(uowFactory FoodUoWFactory) RateFoodCommandHandler {
	return RateFoodCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RateFoodCommandHandler) Handle(ctx context.Context, cmd RateFoodCommand) (food.Score, error) {
	if err := cmd.Validate(); err != nil {
		return food.Score{}, err
	}

	var err error
	for range RateFoodMaxAttempts {
		var score food.Score
		score, err = h.rate(ctx, cmd)
		if err == nil {
			return score, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return food.Score{}, err
		}
		if ctx.Err() != nil {
			return food.Score{}, ctx.Err()
		}
	}

	return food.Score{}, err
}

func (h RateFoodCommandHandler) rate(ctx context.Context, cmd RateFoodCommand) (food.Score, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return food.Score{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	foodRepo := uow.FoodRepository()
	ratingRepo := uow.RatingRepository()

	f, err := foodRepo.Get(ctx, cmd.FoodID())
	if err != nil {
		return food.Score{}, err
	}

	previous, err := ratingRepo.FindByFoodAndUser(ctx, f.ID(), cmd.Actor().ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return food.Score{}, err
	}

	rating, err := f.Rate(kernel.NewUUID(), cmd.Actor().ID(), cmd.Value(), previous)
	if err != nil {
		return food.Score{}, err
	}

	if rating.IsNew() {
		err = ratingRepo.Add(ctx, rating)
	} else {
		err = ratingRepo.Update(ctx, rating)
	}
	if err != nil {
		return food.Score{}, err
	}

	if err = foodRepo.Update(ctx, f); err != nil {
		return food.Score{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return food.Score{}, err
	}

	return f.Score(), nil
}
