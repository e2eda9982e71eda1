package priority

func decodeNiceness(raw int, err error) (int, error) {
	return decodeLinuxNiceness(raw, err)
}
