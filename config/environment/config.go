package environment

import "os"

func GetMapsAPIKey() string {
	return os.Getenv("GOOGLE_MAPS_API_KEY")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
