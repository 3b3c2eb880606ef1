package main

// @title HomeScout Listings API
// @version 1.0
// @description Backend for browsing property listings, location suggestions, saved properties and mortgage calculations.
// @BasePath /api
func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
