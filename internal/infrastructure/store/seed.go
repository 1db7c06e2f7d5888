package store

import "github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"

// SampleCatalog returns the built-in Samsung phone catalog used to bootstrap
// an empty store.
func SampleCatalog() []domain.PhoneRecord {
	return []domain.PhoneRecord{
		{
			ModelName:   "Samsung Galaxy S25 Ultra",
			ReleaseDate: "February 2025",
			Display:     "6.9 inches, Dynamic AMOLED 2X, 120Hz, 1440 x 3120 pixels",
			Battery:     "5000 mAh, 45W wired charging, 15W wireless",
			Camera:      "200 MP main | 50 MP periscope telephoto | 10 MP telephoto | 12 MP ultrawide",
			RAM:         "12/16 GB",
			Storage:     "256GB/512GB/1TB",
			Price:       "$1299 / €1449",
			Chipset:     "Snapdragon 8 Elite",
			OS:          "Android 15, One UI 7",
			Body:        "162.8 x 77.6 x 8.2 mm, 218g, Titanium frame",
			URL:         "https://www.gsmarena.com/samsung_galaxy_s25_ultra-13322.php",
		},
		{
			ModelName:   "Samsung Galaxy S25+",
			ReleaseDate: "February 2025",
			Display:     "6.7 inches, Dynamic AMOLED 2X, 120Hz, 1440 x 3120 pixels",
			Battery:     "4900 mAh, 45W wired charging, 15W wireless",
			Camera:      "50 MP main | 10 MP telephoto | 12 MP ultrawide",
			RAM:         "12 GB",
			Storage:     "256GB/512GB",
			Price:       "$999 / €1149",
			Chipset:     "Snapdragon 8 Elite",
			OS:          "Android 15, One UI 7",
			Body:        "158.4 x 75.8 x 7.3 mm, 190g",
			URL:         "https://www.gsmarena.com/samsung_galaxy_s25+-13323.php",
		},
		{
			ModelName:   "Samsung Galaxy S25",
			ReleaseDate: "February 2025",
			Display:     "6.2 inches, Dynamic AMOLED 2X, 120Hz, 1080 x 2340 pixels",
			Battery:     "4000 mAh, 25W wired charging, 15W wireless",
			Camera:      "50 MP main | 10 MP telephoto | 12 MP ultrawide",
			RAM:         "12 GB",
			Storage:     "128GB/256GB/512GB",
			Price:       "$799 / €899",
			Chipset:     "Snapdragon 8 Elite",
			OS:          "Android 15, One UI 7",
			Body:        "146.9 x 70.5 x 7.2 mm, 162g",
			URL:         "https://www.gsmarena.com/samsung_galaxy_s25-13324.php",
		},
		{
			ModelName:   "Samsung Galaxy S24 Ultra",
			ReleaseDate: "January 2024",
			Display:     "6.8 inches, Dynamic AMOLED 2X, 120Hz, 1440 x 3120 pixels",
			Battery:     "5000 mAh, 45W wired charging, 15W wireless",
			Camera:      "200 MP main | 50 MP periscope telephoto | 10 MP telephoto | 12 MP ultrawide",
			RAM:         "12 GB",
			Storage:     "256GB/512GB/1TB",
			Price:       "$1299 / €1449",
			Chipset:     "Snapdragon 8 Gen 3",
			OS:          "Android 14, One UI 6.1",
			Body:        "162.3 x 79 x 8.6 mm, 232g, Titanium frame",
			URL:         "https://www.gsmarena.com/samsung_galaxy_s24_ultra-12771.php",
		},
		{
			ModelName:   "Samsung Galaxy S24",
			ReleaseDate: "January 2024",
			Display:     "6.2 inches, Dynamic AMOLED 2X, 120Hz, 1080 x 2340 pixels",
			Battery:     "4000 mAh, 25W wired charging, 15W wireless",
			Camera:      "50 MP main | 10 MP telephoto | 12 MP ultrawide",
			RAM:         "8 GB",
			Storage:     "128GB/256GB/512GB",
			Price:       "$799 / €899",
			Chipset:     "Exynos 2400 / Snapdragon 8 Gen 3",
			OS:          "Android 14, One UI 6.1",
			Body:        "147 x 70.6 x 7.6 mm, 167g",
			URL:         "https://www.gsmarena.com/samsung_galaxy_s24-12773.php",
		},
		{
			ModelName:   "Samsung Galaxy S23 Ultra",
			ReleaseDate: "February 2023",
			Display:     "6.8 inches, Dynamic AMOLED 2X, 120Hz, 1440 x 3088 pixels",
			Battery:     "5000 mAh, 45W wired charging, 15W wireless",
			Camera:      "200 MP main | 10 MP periscope telephoto | 10 MP telephoto | 12 MP ultrawide",
			RAM:         "8/12 GB",
			Storage:     "256GB/512GB/1TB",
			Price:       "$1199 / €1399",
			Chipset:     "Snapdragon 8 Gen 2",
			OS:          "Android 13, One UI 5.1",
			Body:        "163.4 x 78.1 x 8.9 mm, 234g",
			URL:         "https://www.gsmarena.com/samsung_galaxy_s23_ultra-12024.php",
		},
		{
			ModelName:   "Samsung Galaxy S23",
			ReleaseDate: "February 2023",
			Display:     "6.1 inches, Dynamic AMOLED 2X, 120Hz, 1080 x 2340 pixels",
			Battery:     "3900 mAh, 25W wired charging, 15W wireless",
			Camera:      "50 MP main | 10 MP telephoto | 12 MP ultrawide",
			RAM:         "8 GB",
			Storage:     "128GB/256GB/512GB",
			Price:       "$799 / €949",
			Chipset:     "Snapdragon 8 Gen 2",
			OS:          "Android 13, One UI 5.1",
			Body:        "146.3 x 70.9 x 7.6 mm, 168g",
			URL:         "https://www.gsmarena.com/samsung_galaxy_s23-12082.php",
		},
		{
			ModelName:   "Samsung Galaxy S22 Ultra",
			ReleaseDate: "February 2022",
			Display:     "6.8 inches, Dynamic AMOLED 2X, 120Hz, 1440 x 3088 pixels",
			Battery:     "5000 mAh, 45W wired charging, 15W wireless",
			Camera:      "108 MP main | 10 MP periscope telephoto | 10 MP telephoto | 12 MP ultrawide",
			RAM:         "8/12 GB",
			Storage:     "128GB/256GB/512GB/1TB",
			Price:       "$1199 / €1249",
			Chipset:     "Exynos 2200 / Snapdragon 8 Gen 1",
			OS:          "Android 12, One UI 4.1",
			Body:        "163.3 x 77.9 x 8.9 mm, 228g, S Pen slot",
			URL:         "https://www.gsmarena.com/samsung_galaxy_s22_ultra_5g-11251.php",
		},
		{
			ModelName:   "Samsung Galaxy S22",
			ReleaseDate: "February 2022",
			Display:     "6.1 inches, Dynamic AMOLED 2X, 120Hz, 1080 x 2340 pixels",
			Battery:     "3700 mAh, 25W wired charging, 15W wireless",
			Camera:      "50 MP main | 10 MP telephoto | 12 MP ultrawide",
			RAM:         "8 GB",
			Storage:     "128GB/256GB",
			Price:       "$699 / €849",
			Chipset:     "Exynos 2200 / Snapdragon 8 Gen 1",
			OS:          "Android 12, One UI 4.1",
			Body:        "146 x 70.6 x 7.6 mm, 167g",
			URL:         "https://www.gsmarena.com/samsung_galaxy_s22_5g-11253.php",
		},
		{
			ModelName:   "Samsung Galaxy Z Fold 6",
			ReleaseDate: "July 2024",
			Display:     "7.6 inches foldable Dynamic AMOLED 2X, 120Hz + 6.3 inches cover display",
			Battery:     "4400 mAh, 25W wired charging, 15W wireless",
			Camera:      "50 MP main | 10 MP telephoto | 12 MP ultrawide",
			RAM:         "12 GB",
			Storage:     "256GB/512GB/1TB",
			Price:       "$1899 / €1999",
			Chipset:     "Snapdragon 8 Gen 3",
			OS:          "Android 14, One UI 6.1.1",
			Body:        "153.5 x 132.6 x 5.6 mm unfolded, 239g",
			URL:         "https://www.gsmarena.com/samsung_galaxy_z_fold6-12960.php",
		},
		{
			ModelName:   "Samsung Galaxy Z Flip 6",
			ReleaseDate: "July 2024",
			Display:     "6.7 inches foldable Dynamic AMOLED 2X, 120Hz + 3.4 inches cover display",
			Battery:     "4000 mAh, 25W wired charging, 15W wireless",
			Camera:      "50 MP main | 12 MP ultrawide",
			RAM:         "12 GB",
			Storage:     "256GB/512GB",
			Price:       "$1099 / €1199",
			Chipset:     "Snapdragon 8 Gen 3",
			OS:          "Android 14, One UI 6.1.1",
			Body:        "165.1 x 71.9 x 6.9 mm unfolded, 187g",
			URL:         "https://www.gsmarena.com/samsung_galaxy_z_flip6-13064.php",
		},
		{
			ModelName:   "Samsung Galaxy A54 5G",
			ReleaseDate: "March 2023",
			Display:     "6.4 inches, Super AMOLED, 120Hz, 1080 x 2340 pixels",
			Battery:     "5000 mAh, 25W wired charging",
			Camera:      "50 MP main | 12 MP ultrawide | 5 MP macro",
			RAM:         "6/8 GB",
			Storage:     "128GB/256GB",
			Price:       "$449 / €489",
			Chipset:     "Exynos 1380",
			OS:          "Android 13, One UI 5.1",
			Body:        "158.2 x 76.7 x 8.2 mm, 202g",
			URL:         "https://www.gsmarena.com/samsung_galaxy_a54-12070.php",
		},
		{
			ModelName:   "Samsung Galaxy A55 5G",
			ReleaseDate: "March 2024",
			Display:     "6.6 inches, Super AMOLED, 120Hz, 1080 x 2340 pixels",
			Battery:     "5000 mAh, 25W wired charging",
			Camera:      "50 MP main | 12 MP ultrawide | 5 MP macro",
			RAM:         "8/12 GB",
			Storage:     "128GB/256GB",
			Price:       "$459 / €479",
			Chipset:     "Exynos 1480",
			OS:          "Android 14, One UI 6.1",
			Body:        "161.1 x 77.4 x 8.2 mm, 213g",
			URL:         "https://www.gsmarena.com/samsung_galaxy_a55-12824.php",
		},
	}
}
