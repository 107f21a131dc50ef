package rc5

// ExpandKey expands the secret into the 2*rounds+1 subkeys of the interleaved schedule, in which the mixing pass
// advances each index by the other's current value.
//
// Both indexes start at zero, so the mixing pass only ever revisits S[0] and the first key word; S[1] onward keep
// their initial values of P+kQ. Use ExpandReferenceKey where every subkey must depend on the secret.
//
// ExpandKey panics if rounds is negative.
func ExpandKey[W Word[W]](secret []byte, rounds int) []W {
	if rounds < 0 {
		panic("rc5: rounds cannot be negative")
	}

	s, l := initSubkeys[W](2*rounds+1), packKey[W](secret)
	t, c := len(s), len(l)

	var a, b W
	i, j := 0, 0
	for range 3 * max(c, t) {
		s[i] = RotateLeft(s[i]+a+b, 3)
		a = s[i]
		l[j] = RotateLeft(l[j]+a+b, a+b)
		b = l[j]
		i = (i + j) % t
		j = (j + i) % c
	}

	return s
}

// ExpandReferenceKey expands the secret into the 2*rounds+2 subkeys of the RC5 key schedule as published by Rivest.
//
// ExpandReferenceKey panics if rounds is negative.
func ExpandReferenceKey[W Word[W]](secret []byte, rounds int) []W {
	if rounds < 0 {
		panic("rc5: rounds cannot be negative")
	}

	s, l := initSubkeys[W](2*rounds+2), packKey[W](secret)
	t, c := len(s), len(l)

	var a, b W
	i, j := 0, 0
	for range 3 * max(c, t) {
		s[i] = RotateLeft(s[i]+a+b, 3)
		a = s[i]
		l[j] = RotateLeft(l[j]+a+b, a+b)
		b = l[j]
		i = (i + 1) % t
		j = (j + 1) % c
	}

	return s
}

// initSubkeys returns t subkeys in the arithmetic progression P, P+Q, P+2Q, ...
func initSubkeys[W Word[W]](t int) []W {
	var w W
	s := make([]W, t)
	s[0] = w.P()
	for i := 1; i < t; i++ {
		s[i] = s[i-1] + w.Q()
	}
	return s
}

// packKey packs the secret into max(1, ceil(len(secret)/Size[W]())) little-endian words. An empty secret yields a
// single zero word.
func packKey[W Word[W]](secret []byte) []W {
	u := Size[W]()
	l := make([]W, max(1, (len(secret)+u-1)/u))
	for i := len(secret) - 1; i >= 0; i-- {
		l[i/u] = RotateLeft(l[i/u], 8) + W(secret[i])
	}
	return l
}
