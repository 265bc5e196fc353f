package xirr

// usd is a helper for tests to create dollar amounts from const.
func usd(v float64) Money { return M(v, "USD") }

// on is a helper for tests to create dates from ISO strings.
func on(str string) Date { return MustParseDate(str) }
