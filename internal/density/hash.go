package density

// Hash64 mixes a cell index before it is fed to the estimator. This is the
// splitmix64 avalanche mix, specified exactly (constants included) so that
// the distinct-count estimate is reproducible across implementations:
//
//	x = (i ^ (i >> 30)) * 0xbf58476d1ce4e5b9
//	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
//	return x ^ (x >> 31)
func Hash64(i uint32) uint64 {
	x := uint64(i)
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
