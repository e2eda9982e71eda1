package priority

func decodeNiceness(raw int, err error) (int, error) {
	return decodeDarwinNiceness(raw, err)
}
