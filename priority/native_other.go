//go:build !windows && !linux && !darwin

package priority

func hostClassAccessor() ClassAccessor { return nil }

func hostNiceAccessor() NiceAccessor { return nil }
