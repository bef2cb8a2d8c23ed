// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "github.com/preciouskorir/voting-system/models"

type seedVoter struct {
	idNumber string
	fullName string
	county   string
}

type seedCandidate struct {
	name     string
	category string
	county   string // empty for nationwide candidates
}

var seedVoters = []seedVoter{
	{"41581309", "Precious Korir", "Baringo"},
	{"41581310", "Hassan Juma", "Mombasa"},
	{"41581311", "Kelvin Onyango", "Kisumu"},
	{"41581317", "Grace Wanjiku", "Nyeri"},
	{"41581320", "David Mutiso", "Machakos"},
	{"41581323", "Mary Wambui", "Kiambu"},
	{"41581331", "Jane Wairimu", "Nakuru"},
	{"41581353", "Saida Omar", "Nairobi"},
	{"41581354", "Mercy Jepkemboi", "Baringo"},
	{"41581355", "Hussein Farah", "Mombasa"},
	{"41581356", "Brian Omondi", "Kisumu"},
	{"41581362", "Esther Wambugu", "Nyeri"},
	{"41581365", "Francis Mutuku", "Machakos"},
	{"41581368", "Catherine Njeri", "Kiambu"},
	{"41581376", "Monica Wamboi", "Nakuru"},
	{"41581398", "Leyla Abdi", "Nairobi"},
	{"41581399", "Christine Chepkorir", "Baringo"},
	{"41581400", "Mohamed Yusuf", "Mombasa"},
}

var seedCandidates = []seedCandidate{
	{"Paul Kipchumba", models.CategoryPresident, ""},
	{"Amina Wanjiku", models.CategoryPresident, ""},
	{"Hassan Otieno", models.CategoryPresident, ""},
	// Baringo
	{"Precious Korir", models.CategoryGovernor, "Baringo"},
	{"Mercy Jepkemboi", models.CategoryGovernor, "Baringo"},
	{"Samuel Kiprotich", models.CategoryGovernor, "Baringo"},
	{"Christine Chepkorir", models.CategorySenator, "Baringo"},
	{"David Kiprono", models.CategorySenator, "Baringo"},
	{"Faith Chebet", models.CategorySenator, "Baringo"},
	{"Joseph Kiptaiyat", models.CategoryNationalMP, "Baringo"},
	{"Emily Chelangat", models.CategoryNationalMP, "Baringo"},
	{"Peter Cheruiyot", models.CategoryNationalMP, "Baringo"},
	{"Sharon Jepkorir", models.CategoryCountyMember, "Baringo"},
	{"Moses Koech", models.CategoryCountyMember, "Baringo"},
	{"Judy Chepngetich", models.CategoryCountyMember, "Baringo"},
	// Mombasa
	{"Hassan Juma", models.CategoryGovernor, "Mombasa"},
	{"Fatuma Said", models.CategoryGovernor, "Mombasa"},
	{"Ali Mohammed", models.CategoryGovernor, "Mombasa"},
	{"Hussein Farah", models.CategorySenator, "Mombasa"},
	{"Zainab Omar", models.CategorySenator, "Mombasa"},
	{"Salim Bakari", models.CategorySenator, "Mombasa"},
	{"Mohamed Yusuf", models.CategoryNationalMP, "Mombasa"},
	{"Aisha Suleiman", models.CategoryNationalMP, "Mombasa"},
	{"Omar Hassan", models.CategoryNationalMP, "Mombasa"},
	{"Leyla Abdi", models.CategoryCountyMember, "Mombasa"},
	{"Saida Juma", models.CategoryCountyMember, "Mombasa"},
	{"Yusuf Ahmed", models.CategoryCountyMember, "Mombasa"},
	// Kisumu
	{"Kelvin Onyango", models.CategoryGovernor, "Kisumu"},
	{"Brian Omondi", models.CategoryGovernor, "Kisumu"},
	{"Nancy Achieng", models.CategoryGovernor, "Kisumu"},
	{"Peter Odhiambo", models.CategorySenator, "Kisumu"},
	{"Alfred Okoth", models.CategorySenator, "Kisumu"},
	{"Rose Akinyi", models.CategorySenator, "Kisumu"},
	{"Patrick Otieno", models.CategoryNationalMP, "Kisumu"},
	{"Lilian Atieno", models.CategoryNationalMP, "Kisumu"},
	{"James Oduor", models.CategoryNationalMP, "Kisumu"},
	{"Mercy Adoyo", models.CategoryCountyMember, "Kisumu"},
	{"Clara Akinyi", models.CategoryCountyMember, "Kisumu"},
	{"Dennis Owino", models.CategoryCountyMember, "Kisumu"},
	// Nyeri
	{"Grace Wanjiku", models.CategoryGovernor, "Nyeri"},
	{"Esther Wambugu", models.CategoryGovernor, "Nyeri"},
	{"Thomas Mwangi", models.CategoryGovernor, "Nyeri"},
	{"Daniel Kamau", models.CategorySenator, "Nyeri"},
	{"Mary Wambui", models.CategorySenator, "Nyeri"},
	{"John Kariuki", models.CategorySenator, "Nyeri"},
	{"Catherine Njeri", models.CategoryNationalMP, "Nyeri"},
	{"Henry Gichuki", models.CategoryNationalMP, "Nyeri"},
	{"Jane Wairimu", models.CategoryNationalMP, "Nyeri"},
	{"Patrick Wachira", models.CategoryCountyMember, "Nyeri"},
	{"Lucy Wanjiru", models.CategoryCountyMember, "Nyeri"},
	{"George Kariuki", models.CategoryCountyMember, "Nyeri"},
	// Machakos
	{"David Mutiso", models.CategoryGovernor, "Machakos"},
	{"Francis Mutuku", models.CategoryGovernor, "Machakos"},
	{"Paul Kilonzo", models.CategoryGovernor, "Machakos"},
	{"Elijah Mutua", models.CategorySenator, "Machakos"},
	{"Anthony Kyalo", models.CategorySenator, "Machakos"},
	{"Philip Nzomo", models.CategorySenator, "Machakos"},
	{"Joseph Musyoka", models.CategoryNationalMP, "Machakos"},
	{"Mary Wambua", models.CategoryNationalMP, "Machakos"},
	{"Stephen Muli", models.CategoryNationalMP, "Machakos"},
	{"Pauline Mwikali", models.CategoryCountyMember, "Machakos"},
	{"Mercy Wanjala", models.CategoryCountyMember, "Machakos"},
	{"Peter Mwadime", models.CategoryCountyMember, "Machakos"},
	// Kiambu
	{"Mary Wambui", models.CategoryGovernor, "Kiambu"},
	{"Catherine Njeri", models.CategoryGovernor, "Kiambu"},
	{"Grace Wanjiku", models.CategoryGovernor, "Kiambu"},
	{"Daniel Kamau", models.CategorySenator, "Kiambu"},
	{"Thomas Mwangi", models.CategorySenator, "Kiambu"},
	{"John Kariuki", models.CategorySenator, "Kiambu"},
	{"Jane Wairimu", models.CategoryNationalMP, "Kiambu"},
	{"Henry Gichuki", models.CategoryNationalMP, "Kiambu"},
	{"Esther Wambugu", models.CategoryNationalMP, "Kiambu"},
	{"Patrick Wachira", models.CategoryCountyMember, "Kiambu"},
	{"Lucy Wanjiru", models.CategoryCountyMember, "Kiambu"},
	{"George Kariuki", models.CategoryCountyMember, "Kiambu"},
	// Nakuru
	{"Jane Wairimu", models.CategoryGovernor, "Nakuru"},
	{"Monica Wamboi", models.CategoryGovernor, "Nakuru"},
	{"Grace Wanjiku", models.CategoryGovernor, "Nakuru"},
	{"Daniel Kamau", models.CategorySenator, "Nakuru"},
	{"Thomas Mwangi", models.CategorySenator, "Nakuru"},
	{"John Kariuki", models.CategorySenator, "Nakuru"},
	{"Catherine Njeri", models.CategoryNationalMP, "Nakuru"},
	{"Henry Gichuki", models.CategoryNationalMP, "Nakuru"},
	{"Esther Wambugu", models.CategoryNationalMP, "Nakuru"},
	{"Patrick Wachira", models.CategoryCountyMember, "Nakuru"},
	{"Lucy Wanjiru", models.CategoryCountyMember, "Nakuru"},
	{"George Kariuki", models.CategoryCountyMember, "Nakuru"},
	// Nairobi
	{"Saida Omar", models.CategoryGovernor, "Nairobi"},
	{"Leyla Abdi", models.CategoryGovernor, "Nairobi"},
	{"Amina Mohammed", models.CategoryGovernor, "Nairobi"},
	{"Hassan Juma", models.CategorySenator, "Nairobi"},
	{"Yusuf Ahmed", models.CategorySenator, "Nairobi"},
	{"Abdul Omar", models.CategorySenator, "Nairobi"},
	{"Fatima Abdi", models.CategoryNationalMP, "Nairobi"},
	{"Salma Ibrahim", models.CategoryNationalMP, "Nairobi"},
	{"Aisha Dahir", models.CategoryNationalMP, "Nairobi"},
	{"Mohamed Yusuf", models.CategoryCountyMember, "Nairobi"},
	{"Zainab Omar", models.CategoryCountyMember, "Nairobi"},
	{"Hawa Ismail", models.CategoryCountyMember, "Nairobi"},
}
