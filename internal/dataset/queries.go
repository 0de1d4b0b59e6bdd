package dataset

// Overpass QL queries per category. Each resolves the Delhi administrative
// area and asks for element centroids (out center), so ways and relations
// come back as a single coordinate.

const educationalQuery = `
[out:json][timeout:360];
area["name"="Delhi"]["admin_level"="4"]->.searchArea;
(
  node["amenity"="school"](area.searchArea);
  way["amenity"="school"](area.searchArea);
  relation["amenity"="school"](area.searchArea);

  node["amenity"="college"](area.searchArea);
  way["amenity"="college"](area.searchArea);
  relation["amenity"="college"](area.searchArea);
  node["amenity"="university"](area.searchArea);
  way["amenity"="university"](area.searchArea);
  relation["amenity"="university"](area.searchArea);

  node["amenity"="kindergarten"](area.searchArea);
  way["amenity"="kindergarten"](area.searchArea);
  relation["amenity"="kindergarten"](area.searchArea);

  node["amenity"="training"](area.searchArea);
  way["amenity"="training"](area.searchArea);
  node["amenity"="cram_school"](area.searchArea);
  way["amenity"="cram_school"](area.searchArea);

  node["amenity"="library"](area.searchArea);
  way["amenity"="library"](area.searchArea);
  node["amenity"="research_institute"](area.searchArea);
  way["amenity"="research_institute"](area.searchArea);

  node["amenity"="language_school"](area.searchArea);
  way["amenity"="language_school"](area.searchArea);
  node["amenity"="music_school"](area.searchArea);
  way["amenity"="music_school"](area.searchArea);

  node["building"="school"](area.searchArea);
  way["building"="school"](area.searchArea);
  node["building"="university"](area.searchArea);
  way["building"="university"](area.searchArea);
  node["building"="college"](area.searchArea);
  way["building"="college"](area.searchArea);
);
out center;
`

// educationalNamedQuery widens the net to name-tagged institutions and
// coaching centers the tag-based query misses.
const educationalNamedQuery = `
[out:json][timeout:360];
area["name"="Delhi"]["admin_level"="4"]->.searchArea;
(
  node["name"~"School|College|University|Institute|Academy|Education"](area.searchArea);
  way["name"~"School|College|University|Institute|Academy|Education"](area.searchArea);

  node["education"](area.searchArea);
  way["education"](area.searchArea);
  node["type"="education"](area.searchArea);
  way["type"="education"](area.searchArea);

  node["name"~"Coaching|Tuition|Classes|Tutorial"](area.searchArea);
  way["name"~"Coaching|Tuition|Classes|Tutorial"](area.searchArea);
);
out center;
`

const residentialQuery = `
[out:json][timeout:360];
area["name"="Delhi"]["admin_level"="4"]->.searchArea;
(
  way["building"="apartments"](area.searchArea);
  way["building"="residential"](area.searchArea);
  way["building"="house"](area.searchArea);
  way["landuse"="residential"](area.searchArea);
  node["place"="neighbourhood"](area.searchArea);
  way["place"="neighbourhood"](area.searchArea);
);
out center;
`

const shoppingQuery = `
[out:json][timeout:360];
area["name"="Delhi"]["admin_level"="4"]->.searchArea;
(
  node["shop"="mall"](area.searchArea);
  way["shop"="mall"](area.searchArea);
  node["building"="mall"](area.searchArea);
  way["building"="mall"](area.searchArea);

  node["amenity"="marketplace"](area.searchArea);
  way["amenity"="marketplace"](area.searchArea);
  node["landuse"="retail"](area.searchArea);
  way["landuse"="retail"](area.searchArea);

  node["building"="commercial"](area.searchArea);
  way["building"="commercial"](area.searchArea);
  node["building"="retail"](area.searchArea);
  way["building"="retail"](area.searchArea);

  node["shop"="department_store"](area.searchArea);
  way["shop"="department_store"](area.searchArea);

  node["shop"="supermarket"](area.searchArea);
  way["shop"="supermarket"](area.searchArea);
  node["shop"="electronics"](area.searchArea);
  way["shop"="electronics"](area.searchArea);
  node["shop"="clothes"](area.searchArea);
  way["shop"="clothes"](area.searchArea);
  node["shop"="jewelry"](area.searchArea);
  way["shop"="jewelry"](area.searchArea);

  way["highway"]["name"~"Market|Bazaar|Mall|Shopping"](area.searchArea);
);
out center;
`
