package catalog

import "github.com/google/uuid"

// sampleID derives a stable id so seeded rows and the offline catalog agree.
func sampleID(slug string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("pooja-store/products/"+slug))
}

// SampleProducts is the built-in catalog used for seeding and as the
// fallback when the database is unavailable.
func SampleProducts() []*Product {
	return []*Product{
		{ID: sampleID("ganesh-idol"), Name: "Sacred Ganesh Idol - Handcrafted Marble", Price: 2500, Image: "/assets/ganesh-idol.jpg", Category: "Idols & Statues", Brand: BrandParivartan, Stock: 12,
			Description: "Beautiful handcrafted Lord Ganesh idol made from pure white marble with intricate gold detailing."},
		{ID: sampleID("copper-thali"), Name: "Copper Pooja Thali Set - 7 Pieces", Price: 1850, Image: "/assets/copper-thali.jpg", Category: "Pooja Items", Brand: BrandParivartan, Stock: 25,
			Description: "Complete copper pooja thali set with all essential items for daily worship rituals."},
		{ID: sampleID("rudraksha-mala"), Name: "Rudraksha Mala - 108 Beads", Price: 750, Image: "/assets/rudraksha-mala.jpg", Category: "Spiritual Jewelry", Brand: BrandParivartan, Stock: 45,
			Description: "Authentic 5-mukhi Rudraksha mala with 108 beads for meditation and spiritual practices."},
		{ID: sampleID("brass-diyas"), Name: "Brass Diya Set - Traditional Oil Lamps", Price: 650, Image: "/assets/brass-diyas.jpg", Category: "Lighting", Brand: BrandParivartan, Stock: 30,
			Description: "Set of 5 beautiful brass diyas perfect for festivals and daily aarti."},
		{ID: sampleID("incense-collection"), Name: "Premium Incense Stick Collection", Price: 480, Image: "/assets/incense-collection.jpg", Category: "Incense & Fragrance", Brand: BrandAnandam, Stock: 75,
			Description: "Collection of 12 different premium incense stick fragrances for creating divine atmosphere."},
		{ID: sampleID("crystal-pyramid"), Name: "Crystal Meditation Pyramid", Price: 1200, Image: "/assets/crystal-pyramid.jpg", Category: "Meditation", Brand: BrandAnandam, Stock: 18,
			Description: "Clear quartz crystal pyramid for enhancing meditation and positive energy flow."},
		{ID: sampleID("silk-shawl"), Name: "Silk Prayer Shawl - Handwoven", Price: 950, Image: "/assets/silk-shawl.jpg", Category: "Clothing & Accessories", Brand: BrandAnandam, Stock: 22,
			Description: "Elegant handwoven silk prayer shawl with traditional motifs and golden borders."},
		{ID: sampleID("singing-bowl"), Name: "Tibetan Singing Bowl Set", Price: 1650, Image: "/assets/singing-bowl.jpg", Category: "Sound Healing", Brand: BrandAnandam, Stock: 15,
			Description: "Authentic Tibetan singing bowl with wooden striker for sound healing and meditation."},
		{ID: sampleID("ganesh-chaturthi-kit"), Name: "Complete Ganesh Chaturthi Kit", Price: 3200, Image: "/assets/ganesh-chaturthi-kit.jpg", Category: "Festival Kits", Brand: BrandPriestBooking, Stock: 8,
			Description: "Everything needed for Ganesh Chaturthi celebrations including idol, decorations, and ritual items."},
		{ID: sampleID("graha-shanti-kit"), Name: "Graha Shanti Pooja Kit", Price: 2800, Image: "/assets/graha-shanti-kit.jpg", Category: "Ritual Kits", Brand: BrandPriestBooking, Stock: 12,
			Description: "Complete kit for Graha Shanti pooja including all required items and detailed instruction guide."},
		{ID: sampleID("wedding-essentials"), Name: "Wedding Ceremony Essentials", Price: 5500, Image: "/assets/wedding-essentials.jpg", Category: "Wedding", Brand: BrandPriestBooking, Stock: 5,
			Description: "Premium wedding ceremony kit with all traditional items required for Hindu wedding rituals."},
		{ID: sampleID("satyanarayan-set"), Name: "Satyanarayan Pooja Complete Set", Price: 1850, Image: "/assets/satyanarayan-set.jpg", Category: "Ritual Kits", Brand: BrandPriestBooking, Stock: 20,
			Description: "Complete Satyanarayan pooja kit with all necessary items and prasad ingredients."},
	}
}
