// Package policy loads validator configurations from YAML documents or
// PASSWORD_* environment variables.
//
// YAML policies mirror the dynamic configuration shape accepted by
// validator.ParseConfig:
//
//	length:
//	  min: 8
//	  max: unbounded
//	character_set:
//	  numbers: 1
//	  special:
//	    min: 1
//	    max: 3
//
// FromEnv reads the same bounds from PASSWORD_MIN_LENGTH, PASSWORD_MAX_LENGTH
// and PASSWORD_{MIN,MAX}_{LOWER_CASE,UPPER_CASE,NUMBERS,SPECIAL}, loading a
// .env file once if one is present. Unset variables leave the corresponding
// rule or bound out of the configuration.
package policy
