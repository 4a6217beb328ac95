package dto

// AddWishlistRequest request menambah buku ke wishlist
type AddWishlistRequest struct {
	BookID uint `json:"bookId" binding:"required"`
}

// WishlistItemResponse item wishlist beserta harga promo berjalan
type WishlistItemResponse struct {
	ID   uint         `json:"id"`
	Book BookResponse `json:"book"`
}
