package cardcrypto

const maskRun = "****"

// MaskTail shows only the last four characters, e.g. "****2345".
func MaskTail(id string) string {
	if len(id) < 4 {
		return maskRun
	}
	return maskRun + id[len(id)-4:]
}

// MaskPartial keeps the first and last four characters, e.g. "4123********2345".
func MaskPartial(id string) string {
	if len(id) < 8 {
		return maskRun
	}
	return id[:4] + "********" + id[len(id)-4:]
}
