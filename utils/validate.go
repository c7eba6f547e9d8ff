package utils

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Vietnamese mobile numbers: leading 0 or +84, then a 3/5/7/8/9 prefix.
var phonePattern = regexp.MustCompile(`^(0|\+84)[35789][0-9]{8}$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
