package rescue

// Constant tables of the Rescue instance over p = 2^61 + 20*2^32 + 1 with a
// 12-element state and 10 rounds, as published for the STARK-friendly hash
// challenge. Round constant idx of the flat sequence is
// sha256("MarvellousK" || idx) mod p; the MDS matrix is the Cauchy matrix
// 1/(x_i - y_j) over sha256-derived x and y values, the first candidate
// whose characteristic polynomial has no roots in the field. The leading
// constant vector is injected into the state before the first round; the
// remaining twenty are consumed two per round.

// mdsMatrix is the 12x12 MDS mixing matrix, row major.
var mdsMatrix = [stateWidth][stateWidth]uint64{
	{
		823338088869439231, 2117108638373820691, 2229447756518613873,
		1267826118149340713, 1914040319882762128, 1517472965193791713,
		1517185983240457465, 1173996590568495268, 422851619803761585,
		1602586210003543191, 35735290356331136, 1478684443030049290,
	},
	{
		1185084594364363143, 386504857525734201, 900805054056138048,
		2206086765722274276, 77358030797185120, 168814859743553085,
		609019594106244118, 967259826801110417, 1245941946974910944,
		331754017570996207, 1042813765834987924, 1416706138472890797,
	},
	{
		1644685178030218132, 84777539421936552, 211114716802537324,
		1452180437296649780, 1981779992650434186, 1244315040009035360,
		141834693084545970, 587855844772411290, 947501996990717579,
		1160394519596317219, 1353794997748857692, 1084801327806912709,
	},
	{
		294000575516900023, 1038834305701615220, 2028636067677044788,
		556344854738395739, 673598438439868941, 866232706825334403,
		8439985508328051, 531309808133015717, 913058415036251803,
		1418541144229396763, 260962125129513116, 1629568606490204964,
	},
	{
		1338168026761758784, 639198938790892266, 1175728442583937526,
		1253161805104066097, 322912216969028600, 1265589681041505318,
		1761319009648514235, 329080691196806583, 2206868075918138340,
		363841372535877030, 1058835961667518417, 1378873053370828919,
	},
	{
		2057042464687056702, 1477921882920214288, 1811799613479311691,
		692883914293934706, 1722129634696879434, 1738023165613368735,
		1557039527687079106, 361948928633069941, 1838764902588232309,
		1093073101857924446, 2235148041867494472, 736122639993481301,
	},
	{
		1703087819126335355, 695176839652737917, 935213047666097451,
		112265271919339588, 732242643028035086, 1068706827223187857,
		2025842508514124257, 893511342449768918, 444847765696352207,
		133898360419762315, 1251377835122996224, 402098614266030486,
	},
	{
		1098942770164522421, 2094292053893791057, 1502787197562159741,
		1506874785637887678, 1806798579414918424, 454975914767324193,
		1414323121744038944, 1012955095007255065, 861851233384124269,
		2077817807364448578, 1772311895174947970, 1149025038050060293,
	},
	{
		815640283800696837, 910813018030261660, 1678340892848250907,
		1739246628486150295, 392018795657995396, 175248342069728052,
		1623271890288900249, 1102183448493964872, 689450485525198961,
		961174862671750376, 1153405115385730434, 783761602692458549,
	},
	{
		611048852495693121, 407835610147611058, 1413610481177231988,
		1597579600935506441, 1818379701514592062, 415649361088711773,
		1849052475707052634, 1240815129692687473, 1428195511403744241,
		1532291835431068707, 723086321983531860, 962876074383023221,
	},
	{
		634881164868706703, 1727184416336696360, 207049339081848952,
		278975366067907545, 1120181182190432182, 18233512741727800,
		265294688458162921, 874129395388464351, 1578938804158614352,
		2212191138094533493, 2294115954950092712, 1860899752959121220,
	},
	{
		1172680933710958004, 1130453267765242573, 339548184768822637,
		2304496873779114990, 102144016531266329, 1193667180704190946,
		1408113390435388199, 717197251166574721, 1815513230372816916,
		341598652663476560, 830720924367081080, 1053020951839477025,
	},
}

// initialConstants is injected into the state ahead of round one.
var initialConstants = [stateWidth]uint64{
	2042818120891737159, 1251281670991585583, 87735185202960209,
	2239947377130062957, 1202333810816364401, 1162846502830521269,
	623506559418885740, 983132627954367464, 1692585507853367924,
	614434911971959133, 1475208038133342681, 1679827746384315454,
}

// roundConstants holds two injection vectors per round: vector 2r follows
// the inverse S-box half of round r, vector 2r+1 follows the forward half.
var roundConstants = [2 * numRounds][stateWidth]uint64{
	{
		747537749585950820, 281243186875312044, 577778549251741988,
		930733653279957976, 601036810767521071, 844997634310431678,
		535625794500683031, 387792557346100131, 2290807885147290051,
		412710737781166849, 698021613999022168, 2011187931735891298,
	},
	{
		493937490574304097, 1281480994870021098, 2259490076968797675,
		1235930869844471537, 1298179147529217314, 1653777939234648915,
		1076776212042405112, 1846317782146915287, 1943236668281632557,
		372142997247419599, 710165010137978345, 218537828684534192,
	},
	{
		520609803532189995, 707898450210178991, 847978691682020271,
		1334285484100308642, 1407379196672604628, 2161367985954999845,
		86755235034489424, 1630065556428161079, 716722026371742101,
		1263049714368577205, 1117518665566820522, 950174000589711385,
	},
	{
		198517426672277682, 86695144645827371, 2187548543249998775,
		922142624336596840, 1752242016771886790, 2304678542276059055,
		600389121639559558, 374181594632348730, 340307195727706273,
		716218400946171534, 138094832090652684, 690843318036757995,
	},
	{
		193511554562434645, 1347516947337253242, 221546067322565025,
		489148271399341556, 1433314196554393111, 21973403424522711,
		487881858917079384, 93488507358721690, 615974275608639070,
		1884317404581534724, 1279579857348096203, 1725479157980007481,
	},
	{
		1206414713016571596, 1272929673568255340, 1215778875376871174,
		796711930395126786, 320849871674784758, 1258276448999113920,
		446372573493581620, 2190288547065790170, 2054643653445292478,
		2238591918157558551, 1980008705377633232, 1839661662117695692,
	},
	{
		278407696580824381, 125776442012429146, 315557857274936530,
		2091587670997900419, 1089830490551268650, 1144843865766276138,
		1372108008260706030, 1998888828914333416, 1536346384010279125,
		692208840987320273, 1975020094131349442, 1426718347923665415,
	},
	{
		1959546819596601413, 1499770558289184118, 160360799112268413,
		808735650660468096, 1444854056222378048, 2227478673566160814,
		1794393697991644654, 1910916815467673227, 1781803434280447429,
		381837820710577140, 1168027492599875599, 484196283848702206,
	},
	{
		1752116853587453696, 1278899684774745491, 1560087107270113257,
		1186434072897280021, 1911808996736941706, 373821226799726998,
		1006081993496229961, 1432462461735230475, 646240400389472231,
		742219888259870808, 1622801466246986223, 21753060634846415,
	},
	{
		1498921976510789728, 851729105126672762, 1560964754908825059,
		1256398552198827905, 1657027511916227971, 1606959451746934965,
		479421438058659938, 1868108429218566031, 1458733866439678339,
		1993098699435787743, 1419662103870913692, 153876999007760884,
	},
	{
		908681488047354322, 1059648683476947663, 1422298696872448116,
		796258829872076259, 2000011051100278251, 2126799898235151598,
		1142806555394880963, 87167887627879201, 1764967010086677148,
		2287906206318134809, 1096147872006094440, 327418705403835827,
	},
	{
		538002031346175307, 954643699263118063, 231381803649991513,
		663192079795165472, 2052785578538651955, 1721402442157477925,
		1170602796480668123, 609215085111019548, 113782509706051502,
		1716861710896364704, 116919897596734456, 1343001087851755513,
	},
	{
		2108352352321337234, 2227804721703603316, 1775288589300214998,
		980962507104284863, 178660157568212885, 859919812738625071,
		2156893786645445400, 78968556671150056, 387686852242622737,
		45037490438723424, 1304951229653950874, 285866640459851966,
	},
	{
		162855497825821715, 523015450590782059, 825807589241238118,
		233052756044923835, 2174416936012547239, 1136523934428914167,
		2297465697057698646, 836519015094728779, 669068558290948602,
		979819749607976822, 1406688303361863979, 126596842750082386,
	},
	{
		1234962960995210246, 855883590780627034, 2145878408265271523,
		1032518865840032202, 420058468927174885, 996269423857214312,
		33228897344264057, 865159915081398990, 3817962206233155,
		983529707461844057, 575124192072844629, 727705461310098765,
	},
	{
		1522124062684018341, 1965166303063462651, 1691333373858847010,
		471239528822870101, 1472204230630832684, 2295140230758830623,
		223993327430719953, 1048764872114546433, 289614844801844810,
		1078799541847222477, 1779782174543016555, 487523037435046127,
	},
	{
		172981144895510015, 1238497101916441175, 498613150496703853,
		878170907867777677, 2266860576851213993, 1412791579505025663,
		1437515572647265884, 1741475713399184521, 330061347949363822,
		477925221841207735, 2263763058137952322, 1619947233610158726,
	},
	{
		940724378607303967, 1181269157980671174, 188339616924359284,
		1299637427989459156, 585261879838086507, 1174457836833591758,
		1942762107882876289, 103333255791005935, 1005015829648581780,
		1636159002087098512, 463457549802674229, 1617813204793984351,
	},
	{
		1973128493244667159, 714582191075944714, 1014965583137013174,
		556181343124801510, 1303640756115560327, 1882603328598651335,
		1975394374759354209, 756422884954475762, 767121195914306160,
		349191896186480870, 2294018818388081028, 2140594108859825781,
	},
	{
		1726786311817636675, 1990508092581003274, 389997650067319062,
		1593873652210973012, 650758433296124269, 136349023515684250,
		1132243506236411862, 1262936684747966538, 834693119115512475,
		1326961047368845805, 76749345156462865, 410458115535409705,
	},
}
