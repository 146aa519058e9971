package services

// Split divides a sale price between the marketplace treasury and the seller.
// The treasury cut is floored; the rounding remainder stays with the seller so
// that treasury + seller always equals price exactly.
//
// ratePercent must already be inside [0, 100]; it is validated once at
// marketplace initialization and not re-checked here.
func Split(price int64, ratePercent int) (treasury int64, seller int64) {
	treasury = price * int64(ratePercent) / 100
	return treasury, price - treasury
}
