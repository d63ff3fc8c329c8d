package payload

import (
	"grocery/internal/core"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/jellydator/validation"
)

const (
	MaxCategoryNameLength = 64
	MaxProductNameLength  = 255
)

// numberRegex accepts non-negative integers small enough for strconv.Atoi.
var numberRegex = regexp.MustCompile(`^[0-9]{1,9}$`)

type CategoryRequest struct {
	Name string
}

func (c *CategoryRequest) Bind(form url.Values) {
	c.Name = strings.TrimSpace(form.Get("name"))
}

func (c CategoryRequest) Validate() error {
	return validation.Validate(c.Name,
		validation.Required.Error("category name cannot be empty."),
		validation.RuneLength(0, MaxCategoryNameLength).Error("category name cannot be longer than 64 characters."),
	)
}

type ProductRequest struct {
	Name         string
	PricePerUnit string
	Quantity     string
	Category     string
	Unit         string
}

func (p *ProductRequest) Bind(form url.Values) {
	p.Name = strings.TrimSpace(form.Get("name"))
	p.PricePerUnit = strings.TrimSpace(form.Get("price_per_unit"))
	p.Quantity = strings.TrimSpace(form.Get("quantity"))
	p.Category = strings.TrimSpace(form.Get("category"))
	p.Unit = strings.TrimSpace(form.Get("unit"))
}

func (p ProductRequest) Validate() error {
	required := validation.Required.Error("All the fields are required.")
	return firstError(
		validation.Validate(p.Name, required),
		validation.Validate(p.PricePerUnit, required),
		validation.Validate(p.Quantity, required),
		validation.Validate(p.Category, required),
		validation.Validate(p.Name,
			validation.RuneLength(0, MaxProductNameLength).Error("product name cannot be longer than 255 characters.")),
		validation.Validate(p.Quantity, validation.Match(numberRegex).Error("quantity must be a number.")),
		validation.Validate(p.PricePerUnit, validation.Match(numberRegex).Error("price_per_unit must be a number.")),
		validation.Validate(p.Category, validation.Match(numberRegex).Error("category does not exist.")),
		validation.Validate(p.Unit, validation.Match(numberRegex).Error("unit does not exist.")),
	)
}

// ToMessage converts a validated request. Numeric fields have already been
// checked against numberRegex.
func (p ProductRequest) ToMessage() core.ProductMessage {
	price, _ := strconv.Atoi(p.PricePerUnit)
	quantity, _ := strconv.Atoi(p.Quantity)
	category, _ := strconv.Atoi(p.Category)
	unit, _ := strconv.Atoi(p.Unit)

	return core.ProductMessage{
		Name:         p.Name,
		PricePerUnit: price,
		Quantity:     quantity,
		CategoryID:   uint(category),
		UnitID:       uint(unit),
	}
}
