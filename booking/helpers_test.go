package booking

import "roamio/models"

func providerNamed(name string) models.Provider {
	return models.Provider{Name: name}
}

func flightDetails() models.BookingDetails {
	return models.BookingDetails{
		Flight: &models.FlightDetails{
			From:          "SFO",
			To:            "NRT",
			DepartureDate: "2026-04-01",
		},
	}
}
