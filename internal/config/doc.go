// Package config reads the Google Ads configuration surface: the
// environment variables naming a credential source and the optional
// google-ads.yaml file. It only captures what is configured; precedence
// and resolution order are applied by the ads package.
package config
