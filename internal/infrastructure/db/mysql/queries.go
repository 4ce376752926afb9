package mysql

// Bulk read set, executed in this order.
const (
	qUsers      = `SELECT UserID, FName, LName, Role FROM Users`
	qVenues     = `SELECT * FROM Venue`
	qEvents     = `SELECT e.*, v.VenueName, v.City,
		(SELECT COALESCE(SUM(t.Price), 0) FROM Tickets t WHERE t.EventID = e.EventID) AS TotalRevenue
	FROM Event e
	JOIN Venue v ON e.VenueID = v.VenueID`
	qOrganisers = `SELECT OrgID, OrgName FROM Organisers`
	qStaff      = `SELECT StaffID, StaffName, EventID FROM Staff`
	qSecurity   = `SELECT s.Name, z.ZoneName AS Zone
	FROM Security s
	JOIN Zone z ON s.ZoneID = z.ZoneID AND s.VenueID = z.VenueID`
	qArtists = `SELECT a.ArtistID, a.ArtistName, COUNT(l.EventID) AS PerformanceCount
	FROM Artist a
	LEFT JOIN Lineup l ON a.ArtistID = l.ArtistID
	GROUP BY a.ArtistID, a.ArtistName`
	qLineup = `SELECT l.*, a.ArtistName
	FROM Lineup l
	JOIN Artist a ON l.ArtistID = a.ArtistID`
	qVendors = `SELECT * FROM Vendor`
	qStalls  = `SELECT * FROM Stall`
)

// Analytics, executed on the Admin connection.
const (
	qAvgPricePerEvent = `SELECT e.EventID, e.EventName, AVG(t.Price) AS AvgPrice
	FROM Event e
	JOIN Tickets t ON e.EventID = t.EventID
	GROUP BY e.EventID, e.EventName
	ORDER BY AvgPrice DESC`
	// Nested MAX rather than a window function: every tie is returned.
	qTopTicketBuyers = `SELECT u.UserID, u.FName, u.LName, t.TicketID, t.Price
	FROM Users u
	JOIN Tickets t ON u.UserID = t.UserID
	WHERE t.Price = (SELECT MAX(Price) FROM Tickets)`
	qVenueEvents = `SELECT e.EventID, e.EventName, e.StartTime, o.OrgName
	FROM Event e
	JOIN Venue v ON e.VenueID = v.VenueID
	JOIN Organisers o ON e.OrgID = o.OrgID
	WHERE v.VenueName = ?`
)

const qUserByFirstName = `SELECT UserID, FName, LName, Role FROM Users WHERE FName = ? ORDER BY UserID LIMIT 1`

// Profile reads.
const (
	qTotalSpending = `SELECT GetUserTotalSpending(?)`
	qTicketHistory = `SELECT t.TicketID, t.TicketType, t.Price, t.PurchaseDate,
		e.EventID, e.EventName, e.StartTime, v.VenueName
	FROM Tickets t
	JOIN Event e ON t.EventID = e.EventID
	JOIN Venue v ON e.VenueID = v.VenueID
	WHERE t.UserID = ?
	ORDER BY e.StartTime DESC`
	qRecommendations = `SELECT e.EventID, e.EventName, e.StartTime, v.VenueName, v.City
	FROM Event e
	JOIN Venue v ON e.VenueID = v.VenueID
	WHERE e.StartTime > NOW()
	  AND e.EventID NOT IN (SELECT t.EventID FROM Tickets t WHERE t.UserID = ?)
	ORDER BY e.StartTime ASC
	LIMIT ?`
)

// Writes.
const (
	qInsertUser  = `INSERT INTO Users (FName, LName) VALUES (?, ?)`
	qBookTicket  = `CALL BookTicket(?, ?, ?, ?, ?)`
	qCancelEvent = `CALL CancelEvent(?)`
	qAddStall    = `CALL AddStall(?, ?, ?, ?)`
)
