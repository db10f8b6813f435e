package model

// FoodCategory groups reference foods for display and analysis
type FoodCategory string

const (
	CategoryFruit     FoodCategory = "fruit"
	CategoryVegetable FoodCategory = "vegetable"
)

// Food is an immutable reference item of the active experience.
// Brix is the instrument-measured sugar concentration used as ground truth.
type Food struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	NameIT        string       `json:"name_it" bson:"nameIt"`
	NameEN        string       `json:"name_en" bson:"nameEn"`
	Emoji         string       `json:"emoji,omitempty" bson:"emoji,omitempty"`
	SugarG        float64      `json:"sugar_g" bson:"sugarG"`
	PortionG      float64      `json:"portion_g" bson:"portionG"`
	Brix          float64      `json:"brix" bson:"brix"`
	Category      FoodCategory `json:"category" bson:"category"`
	IsReference   bool         `json:"is_reference" bson:"isReference"`
	OrderPosition int          `json:"order_position" bson:"orderPosition"`
}

// Name returns the localized display name
func (f *Food) Name(locale string) string {
	if locale == "it" && f.NameIT != "" {
		return f.NameIT
	}
	if f.NameEN != "" {
		return f.NameEN
	}
	return f.NameIT
}
