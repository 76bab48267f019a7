package food

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

var ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood constructor")

const (
	MaxNameLength        = 150
	MaxDescriptionLength = 1000
)

// Food is a menu item. It is the aggregate root for its ratings: every rate
// goes through Food.Rate, which keeps Score consistent with the stored ratings.
//
// The version field is an optimistic concurrency token. Repositories write a
// food only when the stored version still equals Version(), then bump it.
type Food struct {
	id          kernel.UUID
	name        string
	description string
	price       int64
	currency    Currency
	pickup      kernel.Location
	score       Score
	media       []string
	createdAt   time.Time
	version     int

	isConstructed bool
}

// NewFood creates a food with no ratings.
//
// Example:
//
//	pickup, _ := kernel.NewLocation(40.84116, 72.32745)
//	f, err := food.NewFood(kernel.NewUUID(), "Lavash", "", 25000, food.Som, pickup, nil, time.Now())
func NewFood(
	id kernel.UUID,
	name string,
	description string,
	price int64,
	currency Currency,
	pickup kernel.Location,
	media []string,
	createdAt time.Time,
) (*Food, error) {
	f := &Food{
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setDescription(description),
		f.setPrice(price),
		f.setCurrency(currency),
		f.setPickup(pickup),
		f.setMedia(media),
		f.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreFood rebuilds a food loaded from persistence.
func RestoreFood(
	id kernel.UUID,
	name string,
	description string,
	price int64,
	currency Currency,
	pickup kernel.Location,
	score Score,
	media []string,
	createdAt time.Time,
	version int,
) (*Food, error) {
	f, err := NewFood(id, name, description, price, currency, pickup, media, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(score.validate(), f.setVersion(version)); err != nil {
		return nil, err
	}
	f.score = score
	return f, nil
}

func (f *Food) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodIsNotConstructed
	}
	return nil
}

func (f *Food) ID() kernel.UUID {
	return f.id
}

func (f *Food) Name() string {
	return f.name
}

func (f *Food) Description() string {
	return f.description
}

// Price is the price of one item in Currency units.
func (f *Food) Price() int64 {
	return f.price
}

func (f *Food) Currency() Currency {
	return f.currency
}

// Pickup is where orders for this food are prepared and collected.
func (f *Food) Pickup() kernel.Location {
	return f.pickup
}

func (f *Food) Score() Score {
	return f.score
}

// Media returns a copy of the media references attached to the food.
func (f *Food) Media() []string {
	out := make([]string, len(f.media))
	copy(out, f.media)
	return out
}

func (f *Food) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Food) Version() int {
	return f.version
}

// Edit replaces the descriptive fields of the food. Ratings and media stay.
func (f *Food) Edit(name, description string, price int64, currency Currency, pickup kernel.Location) error {
	edited := *f

	if err := errors.Join(
		edited.setName(name),
		edited.setDescription(description),
		edited.setPrice(price),
		edited.setCurrency(currency),
		edited.setPickup(pickup),
	); err != nil {
		return err
	}

	*f = edited
	return nil
}

// Rate records value from userID and updates the running average.
//
// previous is the user's existing rating of this food, or nil. When it is set
// the user re-rates: the old value is swapped out of the average and the
// number of rated users stays the same. Otherwise a new Rating is returned and
// the number of rated users grows by one.
func (f *Food) Rate(ratingID kernel.UUID, userID kernel.UUID, value int, previous *Rating) (*Rating, error) {
	if err := validateRate(value); err != nil {
		return nil, err
	}

	if previous != nil {
		if err := previous.Validate(); err != nil {
			return nil, err
		}
		if !previous.foodID.IsEqual(f.id) || !previous.userID.IsEqual(userID) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"previous rating",
				fmt.Errorf("rating %s does not belong to user %s and food %s", previous.id, userID, f.id),
			)
		}

		count := max(f.score.Count, 1)
		total := f.score.Average*float64(count) - float64(previous.value) + float64(value)
		f.score = Score{Average: clampAverage(total / float64(count)), Count: count}

		rated := *previous
		rated.value = value
		rated.isNew = false
		return &rated, nil
	}

	rating, err := RestoreRating(ratingID, f.id, userID, value)
	if err != nil {
		return nil, err
	}
	rating.isNew = true

	count := f.score.Count + 1
	total := f.score.Average*float64(f.score.Count) + float64(value)
	f.score = Score{Average: clampAverage(total / float64(count)), Count: count}
	return rating, nil
}

func clampAverage(avg float64) float64 {
	return max(0, min(MaxRate, avg))
}

func (f *Food) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Food) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len([]rune(name)) > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len([]rune(name)), 1, MaxNameLength)
	}
	f.name = name
	return nil
}

func (f *Food) setDescription(description string) error {
	if len([]rune(description)) > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len([]rune(description)), 0, MaxDescriptionLength)
	}
	f.description = description
	return nil
}

func (f *Food) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	f.price = price
	return nil
}

func (f *Food) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	f.currency = currency
	return nil
}

func (f *Food) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	f.pickup = pickup
	return nil
}

func (f *Food) setMedia(media []string) error {
	refs := make([]string, 0, len(media))
	for _, ref := range media {
		if strings.TrimSpace(ref) == "" {
			return errs.NewValueIsRequiredError("media reference")
		}
		refs = append(refs, ref)
	}
	f.media = refs
	return nil
}

func (f *Food) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	f.createdAt = createdAt.UTC().Truncate(time.Microsecond)
	return nil
}

func (f *Food) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsOutOfRangeError("version", version, 1, "unbounded")
	}
	f.version = version
	return nil
}
