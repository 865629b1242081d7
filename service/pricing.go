package service

// 运费规则是固定的营销策略：满 200000 包邮，否则 30000。
// 购物车预览和下单结算都必须走同一个函数，两边结果要完全一致。
const (
	FreeShippingThreshold = 200000
	FlatShippingFee       = 30000
)

func ComputeShippingFee(subtotal int) int {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// ApplyStockDecrement 库存扣减策略。
// current <= 0 一律不动：-1 是不限库存的哨兵值，0 已经卖空。
// 其余情况扣到 0 为止，不会出现负数。
func ApplyStockDecrement(current, qty int) int {
	if current <= 0 {
		return current
	}
	next := current - qty
	if next < 0 {
		return 0
	}
	return next
}
