package engine

// BpsDenominator 基点分母，10000基点 = 100%
const BpsDenominator = 10000

// SplitFee 按基点费率把总额拆分为平台费与净额。
// fee = amount * bps / 10000（向下取整），net = amount - fee。
func SplitFee(amount, bps int64) (fee, net int64) {
	if amount <= 0 || bps <= 0 {
		return 0, amount
	}
	fee = amount * bps / BpsDenominator
	return fee, amount - fee
}
