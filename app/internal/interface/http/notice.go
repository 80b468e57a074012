package http

import "fmt"

// notice is a short user-facing message for the presentation layer to
// show after a cart action.
type notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

const (
	variantDefault     = "default"
	variantDestructive = "destructive"
)

func noticeAdded(name string) *notice {
	return &notice{Title: "Added to Cart", Description: fmt.Sprintf("%s has been added to your cart.", name), Variant: variantDefault}
}

func noticeIncreased(name string) *notice {
	return &notice{Title: "Cart Updated", Description: fmt.Sprintf("%s quantity increased.", name), Variant: variantDefault}
}

func noticeRemoved() *notice {
	return &notice{Title: "Removed from Cart", Description: "Item has been removed from your cart.", Variant: variantDefault}
}

func noticeOutOfStock() *notice {
	return &notice{Title: "Out of Stock", Description: "This item is currently out of stock.", Variant: variantDestructive}
}

func noticeCheckout() *notice {
	return &notice{Title: "Checkout", Description: "Your order has been passed on to checkout.", Variant: variantDefault}
}
