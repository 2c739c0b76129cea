package services

import "amazon-shop/models"

// DefaultCatalog is applied at every startup.
var DefaultCatalog = []models.SeedProduct{
	{
		Name:        "HTC Vive Focus 3 Eye Tracker",
		Description: "We've been able to leverage VIVE Focus 3's facial and eye-tracking technology for an unprecedented portable and expressive experience for live actors.",
		Price:       models.USD(24900),
		ImageURL:    "/static/HTC Vive Focus 3 Eye Tracker.png",
	},
	{
		Name:        "Tobbi Pro Glasses",
		Description: "Tobii Pro Glasses 3 are versatile. They gather first-hand attention data without skipping a beat in a vehicle or classroom.",
		Price:       models.USD(1000000),
		ImageURL:    "/static/Tobii-Pro-Glasses3-winning-award-logos.png",
	},
	{
		Name:        "Tobii-Pro-Spectrum-with-gaze",
		Description: "For exhaustive research into human behavior and the mechanics of quick eye movements, Tobii Pro Spectrum is our most sophisticated eye-tracking tool.\nData is captured at several sampling rates up to 1200 Hz while permitting head movement.",
		Price:       models.USD(60000),
		ImageURL:    "/static/Tobii-Pro-Spectrum-with-gaze.png",
	},
	{
		Name:        "Tobii Pro Nano",
		Description: "Tobii Pro Nano is a portable research solution for tiny displays. For real study data collecting, use a Windows or Mac laptop with your stimulus.\nBring your portable lab to participants.",
		Price:       models.USD(34900),
		ImageURL:    "/static/TobiiPro-Nano-front-view.png",
	},
}
